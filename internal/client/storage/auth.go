package storage

import (
	"context"
)

// AuthStorage is the opaque client-side slot holding the bearer token.
// The token is treated as an uninterpreted value at this layer; session
// semantics (probing, expiry) live in the session controller.
type AuthStorage interface {
	// SaveAuth stores authentication data, replacing any previous value
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves stored authentication data
	// Returns ErrAuthNotFound if no auth data exists
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes stored authentication data (logout / expiry)
	DeleteAuth(ctx context.Context) error
}

// ClientIDStorage provides the stable per-install client identifier that is
// attached to every request for audit attribution.
type ClientIDStorage interface {
	// ClientID returns the persisted install id, creating one on first use
	ClientID(ctx context.Context) (string, error)
}

// AuthData represents the persisted session state. SavedAt records when the
// token was obtained; it is informational only, expiry is decided by the
// backend (401) and the boot-time session probe.
type AuthData struct {
	Username    string `json:"username"`
	AccessToken string `json:"access_token"`
	SavedAt     int64  `json:"saved_at"`
}
