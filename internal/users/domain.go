package users

import "time"

// User represents a user account with its role tags.
type User struct {
	ID        int64
	Username  string
	Email     string
	CreatedAt time.Time
	Roles     []string
}

// NewUser constructs a User with the creation timestamp defaulted to now
// and an empty role list. Identifiers are assigned by the caller.
func NewUser(id int64, username, email string) *User {
	return &User{
		ID:        id,
		Username:  username,
		Email:     email,
		CreatedAt: time.Now(),
		Roles:     []string{},
	}
}

// HasRole reports whether the user carries the given role tag.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// AddRole appends the role unless it is already present. Duplicates are
// silently ignored. Writing to Roles directly bypasses this guard.
func (u *User) AddRole(role string) {
	if u.HasRole(role) {
		return
	}
	u.Roles = append(u.Roles, role)
}
