package repository

import (
	"context"

	"github.com/userhub/userhub/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	// FindAll returns every stored user ordered by identifier ascending.
	FindAll(ctx context.Context) ([]model.User, error)
	// FindByID returns the user with the given identifier or ErrNotFound.
	FindByID(ctx context.Context, id int64) (*model.User, error)
	// FindByUsername returns the user with the given username or ErrNotFound.
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	// ExistsByUsername reports whether a user with the username is stored.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	// ExistsByEmail reports whether a user with the email is stored.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Create persists a new user. The store assigns the identifier and both
	// timestamps. Unique-constraint violations surface as ErrUsernameTaken
	// or ErrEmailTaken depending on the colliding column.
	Create(ctx context.Context, user *model.User) (*model.User, error)
}
