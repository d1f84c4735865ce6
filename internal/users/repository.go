package users

// Repository provides in-memory persistence keyed by user ID. The store
// owns the saved instances; lookups return the stored pointer. It is not
// safe for concurrent use, so callers that share it across goroutines
// must synchronize externally.
type Repository struct {
	users map[int64]*User
}

// NewRepository constructs an empty repository.
func NewRepository() *Repository {
	return &Repository{users: make(map[int64]*User)}
}

// Save inserts the user or replaces any existing entry with the same ID.
func (r *Repository) Save(u *User) {
	r.users[u.ID] = u
}

// FindByID returns the user stored under id, or false when absent.
func (r *Repository) FindByID(id int64) (*User, bool) {
	u, ok := r.users[id]
	return u, ok
}

// FindByUsername scans the store for a user with the given username.
// When several users share a username the match is arbitrary, since map
// iteration order is not defined.
func (r *Repository) FindByUsername(username string) (*User, bool) {
	for _, u := range r.users {
		if u.Username == username {
			return u, true
		}
	}
	return nil, false
}

// Count returns the number of stored users.
func (r *Repository) Count() int {
	return len(r.users)
}

var _ RepositoryPort = (*Repository)(nil)
