package app

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/userhub/userhub/internal/domain/errors"
	"github.com/userhub/userhub/internal/domain/model"
	testhelpers "github.com/userhub/userhub/internal/test"
	"github.com/userhub/userhub/internal/usecase"
)

type healthCheckerStub struct {
	err error
}

func (s healthCheckerStub) HealthCheck(context.Context) error { return s.err }

func newTestFacade() *UserFacade {
	repo := testhelpers.NewUserRepositoryStub()
	uc := usecase.NewUserUseCase(repo, testhelpers.HasherStub{})
	return NewUserFacade(uc, healthCheckerStub{})
}

func TestUserFacadeCreateAndLookups(t *testing.T) {
	facade := newTestFacade()
	ctx := context.Background()

	created, err := facade.CreateUser(ctx, model.NewUser{
		Username:  "alice",
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "A",
		Password:  "secret1",
	})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	byID, err := facade.UserByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("lookup by id failed: %v", err)
	}
	if byID.Username != "alice" {
		t.Fatalf("unexpected user: %+v", byID)
	}

	byName, err := facade.UserByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("lookup by username failed: %v", err)
	}
	if byName.ID != created.ID {
		t.Fatalf("expected id %d, got %d", created.ID, byName.ID)
	}

	users, err := facade.Users(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected one user, got %d", len(users))
	}
}

func TestUserFacadeAbsentUser(t *testing.T) {
	facade := newTestFacade()
	if _, err := facade.UserByID(context.Background(), 404); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserFacadePing(t *testing.T) {
	uc := usecase.NewUserUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{})

	healthy := NewUserFacade(uc, healthCheckerStub{})
	if err := healthy.Ping(context.Background()); err != nil {
		t.Fatalf("expected healthy ping, got %v", err)
	}

	down := NewUserFacade(uc, healthCheckerStub{err: errors.New("db down")})
	if err := down.Ping(context.Background()); err == nil {
		t.Fatal("expected ping error")
	}
}
