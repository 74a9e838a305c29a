package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/signalops/sigconsole/internal/models"
	"github.com/signalops/sigconsole/pkg/api"
)

// TokenSource supplies the current bearer token. An empty string means
// unauthenticated and the Authorization header is omitted. The session
// controller is the only implementation and its single writer.
type TokenSource interface {
	Token() string
}

// Client is the HTTP gateway to the backend. Every response passes through
// one classifier: 401 triggers the expiry handler before the caller sees the
// error, 409 becomes KindConflict, other non-2xx become KindAPI with the
// backend message when one can be parsed.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource
	clientID   string
	onExpired  func()
}

// NewClient creates a new API gateway. tokens may not be nil.
func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Carry the Authorization header across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetClientID sets the per-install id attached as X-Client-ID.
func (c *Client) SetClientID(id string) { c.clientID = id }

// SetExpiryHandler registers the hook invoked on any 401 outside the login
// exchange. It runs before the caller's error handling so that a caller
// mid-mutation can never retry against a dead session.
func (c *Client) SetExpiryHandler(fn func()) { c.onExpired = fn }

// Login exchanges credentials for a bearer token. A 401 here means rejected
// credentials, not an expired session, so the expiry hook is suppressed.
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetSession returns the identity bound to the current token. Used as the
// boot-time probe and to refresh the user bar.
func (c *Client) GetSession(ctx context.Context) (*api.SessionResponse, error) {
	var resp api.SessionResponse
	if err := c.do(ctx, http.MethodGet, "/session", nil, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListSignals fetches the full signal collection.
func (c *Client) ListSignals(ctx context.Context) ([]models.Signal, error) {
	var signals []models.Signal
	if err := c.do(ctx, http.MethodGet, "/signals", nil, &signals, false); err != nil {
		return nil, err
	}
	return signals, nil
}

// CreateSignal submits a new signal. The created record is returned but the
// synchronizer always reloads the collection instead of inserting locally.
func (c *Client) CreateSignal(ctx context.Context, req api.SignalPayload) (*models.Signal, error) {
	var resp models.Signal
	if err := c.do(ctx, http.MethodPost, "/signals", req, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateSignal submits a conditional signal mutation.
func (c *Client) UpdateSignal(ctx context.Context, id int64, req api.SignalUpdate) (*api.UpdateResponse, error) {
	var resp api.UpdateResponse
	path := fmt.Sprintf("/signals/%d", id)
	if err := c.do(ctx, http.MethodPatch, path, req, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteSignal soft-deletes a signal, conditional on lockVersion.
func (c *Client) DeleteSignal(ctx context.Context, id, lockVersion int64) error {
	path := fmt.Sprintf("/signals/%d", id)
	return c.do(ctx, http.MethodDelete, path, api.DeleteRequest{LockVersion: lockVersion}, nil, false)
}

// ListAssets fetches the full asset collection.
func (c *Client) ListAssets(ctx context.Context) ([]models.Asset, error) {
	var assets []models.Asset
	if err := c.do(ctx, http.MethodGet, "/assets", nil, &assets, false); err != nil {
		return nil, err
	}
	return assets, nil
}

// CreateAsset submits a new asset.
func (c *Client) CreateAsset(ctx context.Context, req api.AssetPayload) (*models.Asset, error) {
	var resp models.Asset
	if err := c.do(ctx, http.MethodPost, "/assets", req, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateAsset submits a conditional asset mutation.
func (c *Client) UpdateAsset(ctx context.Context, id int64, req api.AssetUpdate) (*api.UpdateResponse, error) {
	var resp api.UpdateResponse
	path := fmt.Sprintf("/assets/%d", id)
	if err := c.do(ctx, http.MethodPatch, path, req, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteAsset soft-deletes an asset, conditional on lockVersion.
func (c *Client) DeleteAsset(ctx context.Context, id, lockVersion int64) error {
	path := fmt.Sprintf("/assets/%d", id)
	return c.do(ctx, http.MethodDelete, path, api.DeleteRequest{LockVersion: lockVersion}, nil, false)
}

// ListTrash fetches the soft-delete ledger.
func (c *Client) ListTrash(ctx context.Context) ([]models.TrashEntry, error) {
	var entries []models.TrashEntry
	if err := c.do(ctx, http.MethodGet, "/trash", nil, &entries, false); err != nil {
		return nil, err
	}
	return entries, nil
}

// ListChanges fetches the change feed in server order.
func (c *Client) ListChanges(ctx context.Context) ([]models.ChangeLogRow, error) {
	var rows []models.ChangeLogRow
	if err := c.do(ctx, http.MethodGet, "/changes", nil, &rows, false); err != nil {
		return nil, err
	}
	return rows, nil
}

// ListVersions fetches the version history of one record in server order.
func (c *Client) ListVersions(ctx context.Context, entityType string, entityID int64) ([]models.VersionEntry, error) {
	var versions []models.VersionEntry
	path := fmt.Sprintf("/versions/%s/%d", entityType, entityID)
	if err := c.do(ctx, http.MethodGet, path, nil, &versions, false); err != nil {
		return nil, err
	}
	return versions, nil
}

// do performs one HTTP round trip and classifies the response.
// skipExpiry suppresses the 401 expiry hook for the login exchange.
func (c *Client) do(ctx context.Context, method, path string, body, result interface{}, skipExpiry bool) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if c.clientID != "" {
		req.Header.Set("X-Client-ID", c.clientID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, cause: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindNetwork, cause: err}
	}

	if resp.StatusCode == http.StatusUnauthorized && !skipExpiry {
		// Clear the session before the caller's own error handling runs:
		// many callers are mid-mutation and must not retry blindly.
		if c.onExpired != nil {
			c.onExpired()
		}
		return &Error{Kind: KindAuthExpired, Status: resp.StatusCode, Body: rawJSON(respBody)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		kind := KindAPI
		if resp.StatusCode == http.StatusConflict {
			kind = KindConflict
		}
		return &Error{
			Kind:    kind,
			Status:  resp.StatusCode,
			Message: errorMessage(respBody),
			Body:    rawJSON(respBody),
		}
	}

	// 204 on delete is a defined success with an empty result
	if resp.StatusCode == http.StatusNoContent || result == nil || len(respBody) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// errorMessage extracts the backend message from an error payload.
// A body that is not valid JSON yields an empty message, never an error.
func errorMessage(body []byte) string {
	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return ""
	}
	return errResp.Text()
}

// rawJSON keeps the payload only when it is valid JSON.
func rawJSON(body []byte) json.RawMessage {
	if !json.Valid(body) {
		return nil
	}
	return json.RawMessage(body)
}
