package test

import (
	"context"
	"time"

	domainErrors "github.com/userhub/userhub/internal/domain/errors"
	"github.com/userhub/userhub/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests. Users are kept in
// insertion order, which matches the identifier-ascending contract.
type UserRepositoryStub struct {
	Users []model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs an empty stub repository.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{Next: 1}
}

// FindAll returns all stored users in insertion order.
func (s *UserRepositoryStub) FindAll(ctx context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.User, len(s.Users))
	copy(out, s.Users)
	return out, nil
}

// FindByID fetches a user by identifier or returns not found.
func (s *UserRepositoryStub) FindByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Users {
		if s.Users[i].ID == id {
			u := s.Users[i]
			return &u, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// FindByUsername fetches a user by username or returns not found.
func (s *UserRepositoryStub) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Users {
		if s.Users[i].Username == username {
			u := s.Users[i]
			return &u, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ExistsByUsername reports whether a user with the username is stored.
func (s *UserRepositoryStub) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if s.Err != nil {
		return false, s.Err
	}
	for i := range s.Users {
		if s.Users[i].Username == username {
			return true, nil
		}
	}
	return false, nil
}

// ExistsByEmail reports whether a user with the email is stored.
func (s *UserRepositoryStub) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if s.Err != nil {
		return false, s.Err
	}
	for i := range s.Users {
		if s.Users[i].Email == email {
			return true, nil
		}
	}
	return false, nil
}

// Create assigns the next identifier and timestamps, enforcing uniqueness
// the way the real store's constraints do.
func (s *UserRepositoryStub) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Users {
		if s.Users[i].Username == user.Username {
			return nil, domainErrors.ErrUsernameTaken
		}
		if s.Users[i].Email == user.Email {
			return nil, domainErrors.ErrEmailTaken
		}
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *user
	stored.ID = s.Next
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	s.Next++
	s.Users = append(s.Users, stored)
	out := stored
	return &out, nil
}
