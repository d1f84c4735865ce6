package users

import "strings"

// DefaultAdmin creates the default admin user for initial setup: ID 1,
// username "admin", email "admin@example.com", tagged with the "admin"
// role.
func DefaultAdmin() *User {
	admin := NewUser(1, "admin", "admin@example.com")
	admin.AddRole("admin")
	return admin
}

// ValidateEmail performs a basic syntactic check: the address must
// contain "@" and the segment between the first "@" and the next "@"
// (or the end of the string) must contain ".". It is a heuristic, not
// an RFC check; addresses like "a..b@c.d" or "@x.y" pass.
func ValidateEmail(email string) bool {
	_, rest, ok := strings.Cut(email, "@")
	if !ok {
		return false
	}
	rest, _, _ = strings.Cut(rest, "@")
	return strings.Contains(rest, ".")
}
