package users

import "log/slog"

// RepositoryPort defines data access methods for users.
type RepositoryPort interface {
	Save(u *User)
	FindByID(id int64) (*User, bool)
	FindByUsername(username string) (*User, bool)
	Count() int
}

// Service handles user bookkeeping on top of a repository.
type Service struct {
	repo   RepositoryPort
	logger *slog.Logger
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Save stores the user, replacing any prior entry with the same ID.
func (s *Service) Save(u *User) {
	s.repo.Save(u)
	s.logger.Debug("user saved", "id", u.ID, "username", u.Username)
}

// FindByID returns the user with the given ID, or false when absent.
func (s *Service) FindByID(id int64) (*User, bool) {
	return s.repo.FindByID(id)
}

// FindByUsername returns a user with the given username, or false when
// none is stored.
func (s *Service) FindByUsername(username string) (*User, bool) {
	return s.repo.FindByUsername(username)
}

// Count returns the number of stored users.
func (s *Service) Count() int {
	return s.repo.Count()
}
