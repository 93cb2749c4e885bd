package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	domain "careerbot/backend/internal/domain/auth"
	"careerbot/backend/internal/logging"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes is the longest input bcrypt hashes without truncation.
const maxPasswordBytes = 72

// Service coordinates registration, login and session workflows.
type Service struct {
	users   domain.UserRepository
	tokens  TokenManager
	cost    int
	log     logging.Logger
	nowFunc func() time.Time
	newID   func() string

	dummyOnce sync.Once
	dummyHash []byte
}

// Option customises a Service.
type Option func(*Service)

// WithHashCost overrides the bcrypt cost.
func WithHashCost(cost int) Option {
	return func(s *Service) { s.cost = cost }
}

// WithLogger sets the logger for non-fatal failures.
func WithLogger(log logging.Logger) Option {
	return func(s *Service) { s.log = log }
}

// NewService constructs an auth service.
func NewService(users domain.UserRepository, tokens TokenManager, opts ...Option) *Service {
	s := &Service{
		users:   users,
		tokens:  tokens,
		cost:    bcrypt.DefaultCost,
		log:     logging.Discard(),
		nowFunc: time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register validates input and creates a new account. The returned user
// carries no password hash.
func (s *Service) Register(ctx context.Context, reg domain.Registration) (*domain.User, error) {
	username := strings.TrimSpace(reg.Username)
	email := strings.TrimSpace(reg.Email)
	if username == "" || email == "" || reg.Password == "" {
		return nil, domain.ErrMissingFields
	}
	if utf8.RuneCountInString(reg.Password) < domain.MinPasswordLength {
		return nil, domain.ErrPasswordTooShort
	}
	if len(reg.Password) > maxPasswordBytes {
		return nil, domain.ErrPasswordTooLong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(reg.Password), s.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, domain.ErrPasswordTooLong
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
		MemberSince:  s.nowFunc().Format(domain.MemberSinceLayout),
	}
	id, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id
	return sanitizeUser(user), nil
}

// Login validates credentials and opens a session for the account.
func (s *Service) Login(ctx context.Context, creds domain.Credentials) (string, domain.Session, error) {
	email := strings.TrimSpace(creds.Email)
	if email == "" || creds.Password == "" {
		return "", domain.Session{}, domain.ErrMissingCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Burn the same bcrypt work as a real mismatch.
			_ = bcrypt.CompareHashAndPassword(s.dummy(), []byte(creds.Password))
			return "", domain.Session{}, domain.ErrInvalidCredentials
		}
		return "", domain.Session{}, err
	}

	if !s.checkPassword(ctx, user, creds.Password) {
		return "", domain.Session{}, domain.ErrInvalidCredentials
	}

	return s.StartSession(user)
}

// checkPassword compares password against the stored value. Rows written
// before hashing hold the password verbatim; a match on such a row rehashes
// it in place.
func (s *Service) checkPassword(ctx context.Context, user *domain.User, password string) bool {
	stored := []byte(user.PasswordHash)
	if _, err := bcrypt.Cost(stored); err == nil {
		return bcrypt.CompareHashAndPassword(stored, []byte(password)) == nil
	}

	if subtle.ConstantTimeCompare(stored, []byte(password)) != 1 {
		return false
	}
	log := s.log.With("user_id", user.ID)
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		log.Warn(ctx, "rehash legacy password failed", "error", err)
		return true
	}
	if err := s.users.UpdatePassword(ctx, user.ID, string(hashed)); err != nil {
		log.Warn(ctx, "store rehashed password failed", "error", err)
		return true
	}
	log.Info(ctx, "legacy plaintext password upgraded to bcrypt")
	return true
}

// StartSession mints a fresh session for user and its signed token.
func (s *Service) StartSession(user *domain.User) (string, domain.Session, error) {
	session := domain.Session{
		ID:       s.newID(),
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
	}
	token, err := s.tokens.Generate(session)
	if err != nil {
		return "", domain.Session{}, fmt.Errorf("issue session token: %w", err)
	}
	return token, session, nil
}

// VerifySession resolves a session token. Any defect in the token yields
// ErrNotAuthenticated.
func (s *Service) VerifySession(token string) (domain.Session, error) {
	if token == "" {
		return domain.Session{}, domain.ErrNotAuthenticated
	}
	session, err := s.tokens.Validate(token)
	if err != nil {
		return domain.Session{}, domain.ErrNotAuthenticated
	}
	return session, nil
}

func (s *Service) dummy() []byte {
	s.dummyOnce.Do(func() {
		h, err := bcrypt.GenerateFromPassword([]byte("careerbot-not-a-password"), s.cost)
		if err == nil {
			s.dummyHash = h
		}
	})
	return s.dummyHash
}

func sanitizeUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	copy := *u
	copy.PasswordHash = ""
	return &copy
}
