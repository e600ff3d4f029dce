package app

import (
	"context"

	"github.com/userhub/userhub/internal/domain/model"
	"github.com/userhub/userhub/internal/usecase"
)

// HealthChecker reports backing store connectivity.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// UserFacade adapts the user use case and store health to the HTTP layer.
type UserFacade struct {
	users  *usecase.UserUseCase
	health HealthChecker
}

// NewUserFacade constructs UserFacade.
func NewUserFacade(users *usecase.UserUseCase, health HealthChecker) *UserFacade {
	return &UserFacade{users: users, health: health}
}

// CreateUser registers a new account.
func (f *UserFacade) CreateUser(ctx context.Context, p model.NewUser) (*model.User, error) {
	return f.users.Create(ctx, p)
}

// Users lists every stored account.
func (f *UserFacade) Users(ctx context.Context) ([]model.User, error) {
	return f.users.List(ctx)
}

// UserByID fetches an account by identifier.
func (f *UserFacade) UserByID(ctx context.Context, id int64) (*model.User, error) {
	return f.users.GetByID(ctx, id)
}

// UserByUsername fetches an account by username.
func (f *UserFacade) UserByUsername(ctx context.Context, username string) (*model.User, error) {
	return f.users.GetByUsername(ctx, username)
}

// Ping verifies the backing store is reachable.
func (f *UserFacade) Ping(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
