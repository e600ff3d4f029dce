package handlers

import (
	"context"

	"github.com/userhub/userhub/internal/domain/model"
)

// UserFacade describes account capabilities required by handlers.
type UserFacade interface {
	CreateUser(ctx context.Context, p model.NewUser) (*model.User, error)
	Users(ctx context.Context) ([]model.User, error)
	UserByID(ctx context.Context, id int64) (*model.User, error)
	UserByUsername(ctx context.Context, username string) (*model.User, error)
}

// HealthFacade reports backing store connectivity.
type HealthFacade interface {
	Ping(ctx context.Context) error
}

// AccountFacade aggregates the full set of operations used across handlers.
type AccountFacade interface {
	UserFacade
	HealthFacade
}
