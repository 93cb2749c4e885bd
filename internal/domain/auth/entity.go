package auth

import (
	"errors"
	"fmt"
)

// MinPasswordLength is the minimum number of characters accepted at registration.
const MinPasswordLength = 6

// AccountType is reported for every profile; the system has a single tier.
const AccountType = "Standard User"

// MemberSinceLayout renders the month/year captured at registration, e.g. "July 2025".
const MemberSinceLayout = "January 2006"

var (
	// ErrValidation is the parent of every input validation failure.
	ErrValidation = errors.New("validation failed")
	// ErrMissingFields indicates an empty username, email or password at registration.
	ErrMissingFields = fmt.Errorf("%w: email, password, and username are required", ErrValidation)
	// ErrMissingCredentials indicates an empty email or password at login.
	ErrMissingCredentials = fmt.Errorf("%w: email and password are required", ErrValidation)
	// ErrPasswordTooShort indicates a password below MinPasswordLength characters.
	ErrPasswordTooShort = fmt.Errorf("%w: password too short", ErrValidation)
	// ErrPasswordTooLong indicates a password the hasher cannot accept.
	ErrPasswordTooLong = fmt.Errorf("%w: password too long", ErrValidation)

	// ErrAccountExists signals a duplicate email or username.
	ErrAccountExists = errors.New("email or username already registered")
	// ErrInvalidCredentials indicates a login failure. It never says which field was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotAuthenticated indicates the request carries no usable session.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrUserNotFound indicates missing user.
	ErrUserNotFound = errors.New("user not found")
	// ErrStorage wraps any failure of the underlying store.
	ErrStorage = errors.New("storage failure")
)

// User models the account persisted in storage.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	MemberSince  string
}

// Session is the server-side view of an authenticated browser session.
type Session struct {
	ID       string
	UserID   int64
	Email    string
	Username string
}

// Credentials captures raw credential input for login.
type Credentials struct {
	Email    string
	Password string
}

// Registration captures raw input for account creation.
type Registration struct {
	Username string
	Email    string
	Password string
}

// Profile is the public projection of a User.
type Profile struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	MemberSince string `json:"member_since"`
	AccountType string `json:"account_type"`
}

// ProfileOf projects a user onto its public profile.
func ProfileOf(u *User) Profile {
	return Profile{
		Username:    u.Username,
		Email:       u.Email,
		MemberSince: u.MemberSince,
		AccountType: AccountType,
	}
}
