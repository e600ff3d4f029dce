package test

import (
	"context"
	"time"

	"github.com/userhub/userhub/internal/domain/model"
)

// SampleUser returns a fully populated user for handler tests.
func SampleUser() *model.User {
	return &model.User{
		ID:           1,
		Username:     "alice",
		Email:        "alice@example.com",
		FirstName:    "Alice",
		LastName:     "A",
		PasswordHash: "hash:secret1",
		CreatedAt:    time.Unix(0, 0).UTC(),
		UpdatedAt:    time.Unix(0, 0).UTC(),
	}
}

// UserFacadeStub provides controllable behaviour for user endpoints.
type UserFacadeStub struct {
	CreateFn     func(context.Context, model.NewUser) (*model.User, error)
	UsersFn      func(context.Context) ([]model.User, error)
	ByIDFn       func(context.Context, int64) (*model.User, error)
	ByUsernameFn func(context.Context, string) (*model.User, error)
	PingFn       func(context.Context) error
}

// CreateUser delegates to the provided function or returns a default user.
func (s UserFacadeStub) CreateUser(ctx context.Context, p model.NewUser) (*model.User, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, p)
	}
	u := SampleUser()
	u.Username = p.Username
	u.Email = p.Email
	u.FirstName = p.FirstName
	u.LastName = p.LastName
	return u, nil
}

// Users returns predefined users.
func (s UserFacadeStub) Users(ctx context.Context) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx)
	}
	return []model.User{*SampleUser()}, nil
}

// UserByID returns the configured user for the identifier.
func (s UserFacadeStub) UserByID(ctx context.Context, id int64) (*model.User, error) {
	if s.ByIDFn != nil {
		return s.ByIDFn(ctx, id)
	}
	u := SampleUser()
	u.ID = id
	return u, nil
}

// UserByUsername returns the configured user for the username.
func (s UserFacadeStub) UserByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.ByUsernameFn != nil {
		return s.ByUsernameFn(ctx, username)
	}
	u := SampleUser()
	u.Username = username
	return u, nil
}

// Ping reports configured store health.
func (s UserFacadeStub) Ping(ctx context.Context) error {
	if s.PingFn != nil {
		return s.PingFn(ctx)
	}
	return nil
}
