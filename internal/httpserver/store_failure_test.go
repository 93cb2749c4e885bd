package httpserver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	authdomain "careerbot/backend/internal/domain/auth"
	"careerbot/backend/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const driverDetail = "database is locked: driver-detail-xyz"

// failingRepo passes calls through to the wrapped store until a method is
// switched to fail.
type failingRepo struct {
	authdomain.UserRepository
	create, byEmail, byID atomic.Bool
}

func (r *failingRepo) storageErr() error {
	return fmt.Errorf("%w: %w", authdomain.ErrStorage, errors.New(driverDetail))
}

func (r *failingRepo) Create(ctx context.Context, u *authdomain.User) (int64, error) {
	if r.create.Load() {
		return 0, r.storageErr()
	}
	return r.UserRepository.Create(ctx, u)
}

func (r *failingRepo) GetByEmail(ctx context.Context, email string) (*authdomain.User, error) {
	if r.byEmail.Load() {
		return nil, r.storageErr()
	}
	return r.UserRepository.GetByEmail(ctx, email)
}

func (r *failingRepo) GetByID(ctx context.Context, id int64) (*authdomain.User, error) {
	if r.byID.Load() {
		return nil, r.storageErr()
	}
	return r.UserRepository.GetByID(ctx, id)
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newFailingEnv(t *testing.T) (*testEnv, *failingRepo, *lockedBuffer) {
	t.Helper()
	logs := &lockedBuffer{}
	log, err := logging.New(logs, "debug", "text")
	require.NoError(t, err)

	repo := &failingRepo{}
	env := newTestEnvWith(t, func(inner authdomain.UserRepository) authdomain.UserRepository {
		repo.UserRepository = inner
		return repo
	}, log)
	return env, repo, logs
}

func assertStorageFailure(t *testing.T, resp *http.Response, message string, logs *lockedBuffer) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.JSONEq(t, fmt.Sprintf(`{"message":%q}`, message), string(raw))
	assert.NotContains(t, string(raw), "driver-detail-xyz")
	assert.Contains(t, logs.String(), "driver-detail-xyz")
}

func TestRegister_StorageFailure(t *testing.T) {
	env, repo, logs := newFailingEnv(t)
	repo.create.Store(true)

	resp := env.register(t, "ada", "ada@example.com", "secret1")
	assertStorageFailure(t, resp, "Registration failed. Please try again.", logs)
	assert.Zero(t, env.countUsers(t))
}

func TestLogin_StorageFailure(t *testing.T) {
	env, repo, logs := newFailingEnv(t)
	require.Equal(t, http.StatusCreated, env.register(t, "ada", "ada@example.com", "secret1").StatusCode)
	repo.byEmail.Store(true)

	resp := env.login(t, env.client, "ada@example.com", "secret1")
	assertStorageFailure(t, resp, "Login failed. Please try again.", logs)
	assert.Empty(t, resp.Cookies())
}

func TestProfile_StorageFailure(t *testing.T) {
	env, repo, logs := newFailingEnv(t)
	require.Equal(t, http.StatusCreated, env.register(t, "ada", "ada@example.com", "secret1").StatusCode)
	require.Equal(t, http.StatusOK, env.login(t, env.client, "ada@example.com", "secret1").StatusCode)
	repo.byID.Store(true)

	resp := env.do(t, env.client, http.MethodGet, "/get_user_profile", "")
	assertStorageFailure(t, resp, "Failed to fetch profile data.", logs)
}
