package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/userhub/userhub/internal/domain/errors"
	"github.com/userhub/userhub/internal/domain/model"
	"github.com/userhub/userhub/internal/domain/repository"
	pkgAuth "github.com/userhub/userhub/internal/pkg/auth"
)

// UserUseCase orchestrates account reads and creation.
type UserUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
}

// NewUserUseCase constructs UserUseCase.
func NewUserUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher) *UserUseCase {
	return &UserUseCase{users: users, hasher: hasher}
}

// List returns every stored user ordered by identifier. An empty store
// yields an empty slice, never nil.
func (u *UserUseCase) List(ctx context.Context) ([]model.User, error) {
	users, err := u.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

// GetByID fetches a user by identifier. A missing identifier yields
// ErrNotFound, which callers treat as an ordinary absent result.
func (u *UserUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.FindByID(ctx, id)
}

// GetByUsername fetches a user by username with the same absence semantics
// as GetByID.
func (u *UserUseCase) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return u.users.FindByUsername(ctx, strings.TrimSpace(username))
}

// Create validates the request, checks username and email uniqueness,
// hashes the raw password, and persists the new account. The store's unique
// constraints remain the authoritative guard: a concurrent insert that wins
// the race still surfaces as the matching duplicate error.
func (u *UserUseCase) Create(ctx context.Context, p model.NewUser) (*model.User, error) {
	p.Username = strings.TrimSpace(p.Username)
	p.Email = strings.TrimSpace(p.Email)

	if p.Username == "" || p.Email == "" || p.Password == "" {
		return nil, domainErrors.ErrInvalidUserData
	}
	if !ValidateUsername(p.Username) {
		return nil, domainErrors.ErrInvalidUserData
	}

	taken, err := u.users.ExistsByUsername(ctx, p.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domainErrors.ErrUsernameTaken
	}

	taken, err = u.users.ExistsByEmail(ctx, p.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domainErrors.ErrEmailTaken
	}

	hash, err := u.hasher.Hash(p.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     p.Username,
		Email:        p.Email,
		FirstName:    strings.TrimSpace(p.FirstName),
		LastName:     strings.TrimSpace(p.LastName),
		PasswordHash: hash,
	}

	return u.users.Create(ctx, user)
}
