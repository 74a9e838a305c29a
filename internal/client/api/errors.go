package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Kind classifies a gateway failure. The gateway is the single place that
// recognizes AuthExpired; Conflict and the rest are classified here but the
// recovery is chosen at the call site.
type Kind int

const (
	// KindNetwork means the request never completed (transport failure)
	KindNetwork Kind = iota
	// KindAPI is any non-success backend response outside the special cases
	KindAPI
	// KindAuthExpired is a 401 on an authenticated call: the session is gone
	KindAuthExpired
	// KindConflict is a 409: the submitted lock_version is stale
	KindConflict
)

// Error is the typed failure returned by every gateway call.
type Error struct {
	Kind    Kind
	Status  int             // HTTP status, 0 for transport failures
	Message string          // backend-provided message, may be empty
	Body    json.RawMessage // best-effort raw payload, may be nil
	cause   error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNetwork:
		return fmt.Sprintf("request failed: %v", e.cause)
	case KindAuthExpired:
		return "session expired"
	case KindConflict:
		if e.Message != "" {
			return e.Message
		}
		return "conflict: record was changed by another user"
	default:
		if e.Message != "" {
			return fmt.Sprintf("server error (%d): %s", e.Status, e.Message)
		}
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
}

func (e *Error) Unwrap() error { return e.cause }

// IsAuthExpired reports whether err is a gateway auth-expiry failure.
func IsAuthExpired(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindAuthExpired
}

// IsConflict reports whether err is a stale concurrency-token rejection.
func IsConflict(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindConflict
}

// MessageOr extracts the backend message from err, falling back to the
// given per-operation default when the backend supplied none.
func MessageOr(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
