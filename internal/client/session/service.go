package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/signalops/sigconsole/internal/client/storage"
	"github.com/signalops/sigconsole/internal/validation"
	pkgapi "github.com/signalops/sigconsole/pkg/api"
)

//go:generate moq -out gateway_mock.go . Gateway

// Gateway is the slice of the API client the controller needs: the login
// exchange and the lightweight session probe.
type Gateway interface {
	// Login exchanges credentials for a bearer token
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error)

	// GetSession returns the identity bound to the current token
	GetSession(ctx context.Context) (*pkgapi.SessionResponse, error)
}

// State is the controller's lifecycle state.
type State int

const (
	StateBooting State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateBooting:
		return "booting"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Controller owns the process-wide session value. It is the only writer of
// the token; the gateway reads it through Token() on every request, so a
// logout or expiry is visible to the very next request issued.
type Controller struct {
	mu         sync.RWMutex
	state      State
	token      string
	activeUser string
	expired    bool

	gw     Gateway
	store  storage.AuthStorage
	logger *slog.Logger
}

// NewController creates the session controller. The gateway is attached
// afterwards via SetGateway because the HTTP client needs the controller as
// its token source first.
func NewController(store storage.AuthStorage, logger *slog.Logger) *Controller {
	return &Controller{
		state:  StateBooting,
		store:  store,
		logger: logger,
	}
}

// SetGateway attaches the API gateway. Must be called before Boot.
func (c *Controller) SetGateway(gw Gateway) {
	c.gw = gw
}

// Token implements the gateway's TokenSource. Empty when unauthenticated.
func (c *Controller) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// ActiveUser returns the identity of the authenticated operator, empty when
// unauthenticated.
func (c *Controller) ActiveUser() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.activeUser
}

// Boot resolves the initial state from the persisted token. A present token
// is validated with a session probe; a failed probe falls back silently to
// Unauthenticated, because an expired token on a fresh start is the normal
// path into the login prompt, not a user-actionable failure.
func (c *Controller) Boot(ctx context.Context) error {
	auth, err := c.store.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			c.setUnauthenticated(false)
			return nil
		}
		return fmt.Errorf("failed to read session slot: %w", err)
	}

	c.mu.Lock()
	c.token = auth.AccessToken
	c.mu.Unlock()

	resp, err := c.gw.GetSession(ctx)
	if err != nil || resp.ActiveUser == "" {
		c.logger.Debug("session probe failed, starting unauthenticated", "error", err)
		c.clearSlot(ctx)
		c.setUnauthenticated(false)
		return nil
	}

	c.mu.Lock()
	c.state = StateAuthenticated
	c.activeUser = resp.ActiveUser
	c.expired = false
	c.mu.Unlock()

	c.logger.Info("session restored", "active_user", resp.ActiveUser)
	return nil
}

// Login performs the credential exchange. On failure the controller stays
// Unauthenticated and the backend message propagates to the caller; a failed
// login is never retried here.
func (c *Controller) Login(ctx context.Context, username, password string) error {
	if err := validation.ValidateUsername(username); err != nil {
		return fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}

	resp, err := c.gw.Login(ctx, pkgapi.LoginRequest{Username: username, Password: password})
	if err != nil {
		return err
	}

	auth := &storage.AuthData{
		Username:    username,
		AccessToken: resp.AccessToken,
		SavedAt:     time.Now().Unix(),
	}
	if err := c.store.SaveAuth(ctx, auth); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	c.mu.Lock()
	c.state = StateAuthenticated
	c.token = resp.AccessToken
	c.activeUser = username
	c.expired = false
	c.mu.Unlock()

	// Best-effort probe to pick up the backend's notion of the identity
	if sess, err := c.gw.GetSession(ctx); err == nil && sess.ActiveUser != "" {
		c.mu.Lock()
		c.activeUser = sess.ActiveUser
		c.mu.Unlock()
	}

	c.logger.Info("login successful", "username", username)
	return nil
}

// Logout clears the persisted slot synchronously and drops to
// Unauthenticated.
func (c *Controller) Logout(ctx context.Context) error {
	c.clearSlot(ctx)
	c.setUnauthenticated(false)
	c.logger.Info("logged out")
	return nil
}

// Expire is the gateway's 401 hook. It clears the session before the failing
// call returns, so an in-flight screen render continues as a no-op and the
// next request already carries no bearer token.
func (c *Controller) Expire() {
	c.clearSlot(context.Background())
	c.setUnauthenticated(true)
	c.logger.Debug("session expired by backend")
}

// ConsumeExpiry reports whether the session was expired by the backend since
// the last call, clearing the flag. The console uses it to show the
// "session expired" message instead of the plain login prompt.
func (c *Controller) ConsumeExpiry() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	expired := c.expired
	c.expired = false
	return expired
}

// TokenExpiry extracts the expiry claim from the bearer token without
// verifying it; verification is the backend's job, this is display only.
func (c *Controller) TokenExpiry() (time.Time, bool) {
	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func (c *Controller) setUnauthenticated(expired bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateUnauthenticated
	c.token = ""
	c.activeUser = ""
	c.expired = expired
}

func (c *Controller) clearSlot(ctx context.Context) {
	if err := c.store.DeleteAuth(ctx); err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		c.logger.Warn("failed to clear session slot", "error", err)
	}
}
