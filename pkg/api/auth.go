package api

// LoginRequest carries operator credentials for the login exchange.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is returned on a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"` // bearer token for subsequent requests
}

// SessionResponse describes the identity bound to the current token.
// ActiveUser is empty when the backend has no session for the caller.
type SessionResponse struct {
	ActiveUser string `json:"active_user"`
}

// ErrorResponse is the backend's error payload shape. Either field may be
// absent; callers fall back to a generic message when both are empty.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Text returns the most specific human-readable message the payload carries.
func (e *ErrorResponse) Text() string {
	if e == nil {
		return ""
	}
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}
