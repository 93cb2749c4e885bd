package postgres

import (
	"context"
	"errors"
	"fmt"

	domain "careerbot/backend/internal/domain/auth"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// Querier is the slice of pgx the repository needs. *pgxpool.Pool and pgx.Tx
// both satisfy it.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// UserRepository persists users in PostgreSQL.
type UserRepository struct {
	db Querier
}

// NewUserRepository constructs a repository.
func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

var _ domain.UserRepository = (*UserRepository)(nil)

// Create inserts a new user record and returns its id.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	const query = `
INSERT INTO users (username, email, password, member_since)
VALUES ($1, $2, $3, $4)
RETURNING id
`
	var id int64
	err := r.db.QueryRow(ctx, query,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.MemberSince,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrAccountExists
		}
		return 0, fmt.Errorf("%w: insert user: %w", domain.ErrStorage, err)
	}
	user.ID = id
	return id, nil
}

// GetByEmail fetches a user by exact email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
SELECT id, username, email, password, member_since
FROM users WHERE email = $1
`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

// GetByID retrieves a user by id.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	const query = `
SELECT id, username, email, password, member_since
FROM users WHERE id = $1
`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

// UpdatePassword replaces the stored password hash of user id.
func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	const query = `
UPDATE users SET password = $2
WHERE id = $1
RETURNING id
`
	var updated int64
	err := r.db.QueryRow(ctx, query, id, passwordHash).Scan(&updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("%w: update password: %w", domain.ErrStorage, err)
	}
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.MemberSince,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: scan user: %w", domain.ErrStorage, err)
	}
	return &u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
