package session

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalops/sigconsole/internal/client/storage"
	pkgapi "github.com/signalops/sigconsole/pkg/api"
)

// memStore is an in-memory AuthStorage for controller tests.
type memStore struct {
	auth *storage.AuthData
}

func (m *memStore) SaveAuth(ctx context.Context, auth *storage.AuthData) error {
	m.auth = auth
	return nil
}

func (m *memStore) GetAuth(ctx context.Context) (*storage.AuthData, error) {
	if m.auth == nil {
		return nil, storage.ErrAuthNotFound
	}
	return m.auth, nil
}

func (m *memStore) DeleteAuth(ctx context.Context) error {
	if m.auth == nil {
		return storage.ErrAuthNotFound
	}
	m.auth = nil
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newTestController(store *memStore, gw Gateway) *Controller {
	c := NewController(store, testLogger())
	c.SetGateway(gw)
	return c
}

func TestBoot_NoPersistedToken(t *testing.T) {
	gw := &GatewayMock{}
	c := newTestController(&memStore{}, gw)

	require.NoError(t, c.Boot(context.Background()))

	assert.Equal(t, StateUnauthenticated, c.State())
	assert.Empty(t, c.Token())
	assert.False(t, c.ConsumeExpiry(), "boot fallback must be silent")
	assert.Empty(t, gw.GetSessionCalls(), "no probe without a token")
}

func TestBoot_ValidToken(t *testing.T) {
	store := &memStore{auth: &storage.AuthData{Username: "alice", AccessToken: "tok-1"}}
	gw := &GatewayMock{
		GetSessionFunc: func(ctx context.Context) (*pkgapi.SessionResponse, error) {
			return &pkgapi.SessionResponse{ActiveUser: "alice"}, nil
		},
	}
	c := newTestController(store, gw)

	require.NoError(t, c.Boot(context.Background()))

	assert.Equal(t, StateAuthenticated, c.State())
	assert.Equal(t, "tok-1", c.Token())
	assert.Equal(t, "alice", c.ActiveUser())
	assert.Len(t, gw.GetSessionCalls(), 1)
}

func TestBoot_FailedProbeFallsBackSilently(t *testing.T) {
	store := &memStore{auth: &storage.AuthData{Username: "alice", AccessToken: "stale"}}
	gw := &GatewayMock{
		GetSessionFunc: func(ctx context.Context) (*pkgapi.SessionResponse, error) {
			return nil, errors.New("401")
		},
	}
	c := newTestController(store, gw)

	require.NoError(t, c.Boot(context.Background()))

	assert.Equal(t, StateUnauthenticated, c.State())
	assert.Empty(t, c.Token())
	assert.Nil(t, store.auth, "stale slot must be cleared")
	assert.False(t, c.ConsumeExpiry(), "a stale token on boot is not the expiry path")
}

func TestLogin_Success(t *testing.T) {
	store := &memStore{}
	gw := &GatewayMock{
		LoginFunc: func(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error) {
			assert.Equal(t, "alice", req.Username)
			assert.Equal(t, "x", req.Password)
			return &pkgapi.TokenResponse{AccessToken: "tok-77"}, nil
		},
		GetSessionFunc: func(ctx context.Context) (*pkgapi.SessionResponse, error) {
			return &pkgapi.SessionResponse{ActiveUser: "alice"}, nil
		},
	}
	c := newTestController(store, gw)

	require.NoError(t, c.Login(context.Background(), "alice", "x"))

	assert.Equal(t, StateAuthenticated, c.State())
	assert.Equal(t, "tok-77", c.Token())
	assert.Equal(t, "alice", c.ActiveUser())
	require.NotNil(t, store.auth, "token must be persisted")
	assert.Equal(t, "tok-77", store.auth.AccessToken)
}

func TestLogin_RejectedStaysUnauthenticated(t *testing.T) {
	rejected := errors.New("server error (401): invalid credentials")
	gw := &GatewayMock{
		LoginFunc: func(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error) {
			return nil, rejected
		},
	}
	store := &memStore{}
	c := newTestController(store, gw)
	c.setUnauthenticated(false)

	err := c.Login(context.Background(), "alice", "bad")
	require.ErrorIs(t, err, rejected)

	assert.Equal(t, StateUnauthenticated, c.State())
	assert.Empty(t, c.Token())
	assert.Nil(t, store.auth)
	// No automatic retry: exactly one exchange happened
	assert.Len(t, gw.LoginCalls(), 1)
}

func TestLogin_InvalidInputSkipsNetwork(t *testing.T) {
	gw := &GatewayMock{}
	c := newTestController(&memStore{}, gw)

	assert.Error(t, c.Login(context.Background(), "", "x"))
	assert.Error(t, c.Login(context.Background(), "alice", ""))
	assert.Empty(t, gw.LoginCalls())
}

func TestLogout_ClearsSlotSynchronously(t *testing.T) {
	store := &memStore{auth: &storage.AuthData{Username: "alice", AccessToken: "tok"}}
	c := newTestController(store, &GatewayMock{})
	c.mu.Lock()
	c.state = StateAuthenticated
	c.token = "tok"
	c.activeUser = "alice"
	c.mu.Unlock()

	require.NoError(t, c.Logout(context.Background()))

	assert.Equal(t, StateUnauthenticated, c.State())
	assert.Empty(t, c.Token())
	assert.Nil(t, store.auth)
	assert.False(t, c.ConsumeExpiry(), "logout is not the expiry path")
}

func TestExpire_VisibleToNextRequest(t *testing.T) {
	store := &memStore{auth: &storage.AuthData{Username: "alice", AccessToken: "tok"}}
	c := newTestController(store, &GatewayMock{})
	c.mu.Lock()
	c.state = StateAuthenticated
	c.token = "tok"
	c.activeUser = "alice"
	c.mu.Unlock()

	c.Expire()

	assert.Equal(t, StateUnauthenticated, c.State())
	assert.Empty(t, c.Token(), "next gateway call must carry no bearer")
	assert.Nil(t, store.auth)

	// The notice fires once, then resets
	assert.True(t, c.ConsumeExpiry())
	assert.False(t, c.ConsumeExpiry())
}

func TestTokenExpiry(t *testing.T) {
	c := newTestController(&memStore{}, &GatewayMock{})

	// No token
	_, ok := c.TokenExpiry()
	assert.False(t, ok)

	// Opaque non-JWT token
	c.mu.Lock()
	c.token = "opaque-token"
	c.mu.Unlock()
	_, ok = c.TokenExpiry()
	assert.False(t, ok)

	// JWT with an exp claim
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)

	c.mu.Lock()
	c.token = signed
	c.mu.Unlock()

	got, ok := c.TokenExpiry()
	require.True(t, ok)
	assert.Equal(t, exp.Unix(), got.Unix())
}
