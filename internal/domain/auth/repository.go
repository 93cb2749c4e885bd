package auth

import "context"

// UserRepository defines persistence operations for accounts.
//
// Create must enforce username and email uniqueness atomically and report a
// violation as ErrAccountExists without inserting anything. Lookups report a
// missing row as ErrUserNotFound. Any other failure wraps ErrStorage.
// UpdatePassword replaces the stored password value of an existing account.
type UserRepository interface {
	Create(ctx context.Context, user *User) (int64, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}
