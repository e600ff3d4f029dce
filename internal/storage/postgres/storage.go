package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/userhub/userhub/internal/domain/errors"
	"github.com/userhub/userhub/internal/domain/model"
	"github.com/userhub/userhub/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage relies on. Tests
// substitute a pgxmock pool through the same seam.
type pgxPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// newPgxPool is a construction seam for tests.
var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// migrateUp is a migration seam for tests.
var migrateUp = runMigrations

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

// New creates storage and applies pending schema migrations.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	if err := migrateUp(ctx, dsn); err != nil {
		pool.Close()
		return nil, err
	}

	return &Storage{pool: pool, logger: logger}, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Users returns the user repository bound to this storage.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

const userColumns = "id, username, email, first_name, last_name, password_hash, created_at, updated_at"

func scanUser(row pgx.Row, u *model.User) error {
	return row.Scan(&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
}

func (r *userRepository) FindAll(ctx context.Context) ([]model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	var u model.User
	if err := scanUser(r.storage.pool.QueryRow(ctx, query, id), &u); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE username=$1`
	var u model.User
	if err := scanUser(r.storage.pool.QueryRow(ctx, query, username), &u); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM users WHERE username=$1)`
	var exists bool
	if err := r.storage.pool.QueryRow(ctx, query, username).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM users WHERE email=$1)`
	var exists bool
	if err := r.storage.pool.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	const query = `INSERT INTO users (username, email, first_name, last_name, password_hash)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING id, created_at, updated_at`
	stored := *user
	err := r.storage.pool.
		QueryRow(ctx, query, user.Username, user.Email, user.FirstName, user.LastName, user.PasswordHash).
		Scan(&stored.ID, &stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		return nil, mapUniqueViolation(err)
	}
	return &stored, nil
}

// mapUniqueViolation converts a unique-constraint violation into the
// duplicate-field taxonomy. The constraint is the authoritative guard for
// the check-then-insert race, so both paths report identical errors.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return err
	}
	switch {
	case strings.Contains(pgErr.ConstraintName, "username"):
		return domainErrors.ErrUsernameTaken
	case strings.Contains(pgErr.ConstraintName, "email"):
		return domainErrors.ErrEmailTaken
	default:
		return err
	}
}
