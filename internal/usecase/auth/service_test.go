package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	domain "careerbot/backend/internal/domain/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memRepo struct {
	mu      sync.Mutex
	nextID  int64
	byEmail map[string]*domain.User
	failErr error
}

func newMemRepo() *memRepo {
	return &memRepo{byEmail: map[string]*domain.User{}}
}

func (r *memRepo) Create(_ context.Context, u *domain.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return 0, r.failErr
	}
	for _, existing := range r.byEmail {
		if existing.Email == u.Email || existing.Username == u.Username {
			return 0, domain.ErrAccountExists
		}
	}
	r.nextID++
	stored := *u
	stored.ID = r.nextID
	r.byEmail[u.Email] = &stored
	return stored.ID, nil
}

func (r *memRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return nil, r.failErr
	}
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copy := *u
	return &copy, nil
}

func (r *memRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byEmail {
		if u.ID == id {
			copy := *u
			return &copy, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return r.failErr
	}
	for _, u := range r.byEmail {
		if u.ID == id {
			u.PasswordHash = hash
			return nil
		}
	}
	return domain.ErrUserNotFound
}

// seedLegacy stores an account the way rows were written before hashing.
func (r *memRepo) seedLegacy(username, email, password string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	r.byEmail[email] = &domain.User{
		ID:           r.nextID,
		Username:     username,
		Email:        email,
		PasswordHash: password,
		MemberSince:  "March 2024",
	}
}

type fakeTokens struct {
	issued map[string]domain.Session
	genErr error
}

func (f *fakeTokens) Generate(s domain.Session) (string, error) {
	if f.genErr != nil {
		return "", f.genErr
	}
	if f.issued == nil {
		f.issued = map[string]domain.Session{}
	}
	tok := "tok-" + s.ID
	f.issued[tok] = s
	return tok, nil
}

func (f *fakeTokens) Validate(tok string) (domain.Session, error) {
	s, ok := f.issued[tok]
	if !ok {
		return domain.Session{}, errors.New("unknown token")
	}
	return s, nil
}

func newTestService(repo *memRepo) (*Service, *fakeTokens) {
	tokens := &fakeTokens{}
	svc := NewService(repo, tokens, WithHashCost(bcrypt.MinCost))
	svc.nowFunc = func() time.Time { return time.Date(2025, time.July, 14, 9, 30, 0, 0, time.UTC) }
	n := 0
	svc.newID = func() string {
		n++
		return "sid-" + string(rune('0'+n))
	}
	return svc, tokens
}

func TestRegister_Success(t *testing.T) {
	repo := newMemRepo()
	svc, _ := newTestService(repo)

	u, err := svc.Register(context.Background(), domain.Registration{
		Username: "  ada ",
		Email:    " ada@example.com ",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "ada", u.Username)
	assert.Equal(t, "ada@example.com", u.Email)
	assert.Equal(t, "July 2025", u.MemberSince)
	assert.Empty(t, u.PasswordHash)

	stored := repo.byEmail["ada@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name string
		reg  domain.Registration
		want error
	}{
		{"missing username", domain.Registration{Email: "a@b.c", Password: "secret1"}, domain.ErrMissingFields},
		{"blank email", domain.Registration{Username: "a", Email: "   ", Password: "secret1"}, domain.ErrMissingFields},
		{"missing password", domain.Registration{Username: "a", Email: "a@b.c"}, domain.ErrMissingFields},
		{"five chars", domain.Registration{Username: "a", Email: "a@b.c", Password: "12345"}, domain.ErrPasswordTooShort},
		{"five runes", domain.Registration{Username: "a", Email: "a@b.c", Password: "héllö"}, domain.ErrPasswordTooShort},
		{"too long", domain.Registration{Username: "a", Email: "a@b.c", Password: strings.Repeat("x", 73)}, domain.ErrPasswordTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemRepo()
			svc, _ := newTestService(repo)
			_, err := svc.Register(context.Background(), tt.reg)
			require.ErrorIs(t, err, tt.want)
			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Empty(t, repo.byEmail)
		})
	}
}

func TestRegister_SixCharsAccepted(t *testing.T) {
	svc, _ := newTestService(newMemRepo())
	_, err := svc.Register(context.Background(), domain.Registration{Username: "a", Email: "a@b.c", Password: "123456"})
	require.NoError(t, err)
}

func TestRegister_Duplicate(t *testing.T) {
	repo := newMemRepo()
	svc, _ := newTestService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.Registration{Username: "ada", Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, domain.Registration{Username: "grace", Email: "ada@example.com", Password: "secret2"})
	require.ErrorIs(t, err, domain.ErrAccountExists)
	assert.Len(t, repo.byEmail, 1)
}

func TestRegister_StorageFailure(t *testing.T) {
	repo := newMemRepo()
	repo.failErr = domain.ErrStorage
	svc, _ := newTestService(repo)

	_, err := svc.Register(context.Background(), domain.Registration{Username: "a", Email: "a@b.c", Password: "secret1"})
	require.ErrorIs(t, err, domain.ErrStorage)
}

func TestLogin(t *testing.T) {
	repo := newMemRepo()
	svc, tokens := newTestService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.Registration{Username: "ada", Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)

	tok, session, err := svc.Login(ctx, domain.Credentials{Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, domain.Session{ID: "sid-1", UserID: 1, Email: "ada@example.com", Username: "ada"}, session)
	assert.Equal(t, session, tokens.issued[tok])

	verified, err := svc.VerifySession(tok)
	require.NoError(t, err)
	assert.Equal(t, session, verified)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	repo := newMemRepo()
	svc, _ := newTestService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.Registration{Username: "ada", Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, _, wrongPassword := svc.Login(ctx, domain.Credentials{Email: "ada@example.com", Password: "secret2"})
	_, _, unknownEmail := svc.Login(ctx, domain.Credentials{Email: "nobody@example.com", Password: "secret1"})

	require.ErrorIs(t, wrongPassword, domain.ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, domain.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLogin_MissingCredentials(t *testing.T) {
	svc, _ := newTestService(newMemRepo())
	_, _, err := svc.Login(context.Background(), domain.Credentials{Email: "a@b.c"})
	require.ErrorIs(t, err, domain.ErrMissingCredentials)

	_, _, err = svc.Login(context.Background(), domain.Credentials{Password: "secret1"})
	require.ErrorIs(t, err, domain.ErrMissingCredentials)
}

func TestLogin_StorageFailure(t *testing.T) {
	repo := newMemRepo()
	repo.failErr = domain.ErrStorage
	svc, _ := newTestService(repo)

	_, _, err := svc.Login(context.Background(), domain.Credentials{Email: "a@b.c", Password: "secret1"})
	require.ErrorIs(t, err, domain.ErrStorage)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestStartSession_TokenFailure(t *testing.T) {
	svc, tokens := newTestService(newMemRepo())
	tokens.genErr = errors.New("sign failed")

	_, _, err := svc.StartSession(&domain.User{ID: 1})
	require.Error(t, err)
}

func TestVerifySession_Rejects(t *testing.T) {
	svc, _ := newTestService(newMemRepo())

	_, err := svc.VerifySession("")
	require.ErrorIs(t, err, domain.ErrNotAuthenticated)

	_, err = svc.VerifySession("forged")
	require.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestLogin_LegacyPlaintextRowIsUpgraded(t *testing.T) {
	repo := newMemRepo()
	repo.seedLegacy("ada", "ada@example.com", "secret1")
	svc, _ := newTestService(repo)
	ctx := context.Background()

	_, session, err := svc.Login(ctx, domain.Credentials{Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), session.UserID)

	stored := repo.byEmail["ada@example.com"].PasswordHash
	assert.NotEqual(t, "secret1", stored)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("secret1")))

	// The upgraded row keeps working.
	_, _, err = svc.Login(ctx, domain.Credentials{Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)
}

func TestLogin_LegacyPlaintextRowWrongPassword(t *testing.T) {
	repo := newMemRepo()
	repo.seedLegacy("ada", "ada@example.com", "secret1")
	svc, _ := newTestService(repo)

	_, _, err := svc.Login(context.Background(), domain.Credentials{Email: "ada@example.com", Password: "secret2"})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Equal(t, "secret1", repo.byEmail["ada@example.com"].PasswordHash)
}
