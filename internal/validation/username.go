package validation

import (
	"fmt"
	"regexp"
)

// UsernamePattern is the accepted operator name format: latin letters,
// digits, underscore, dot and dash, 1-64 characters. The backend owns the
// authoritative rules; this check only stops obviously malformed input
// before a network round trip.
var UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]{1,64}$`)

// MaxUsernameLen is the maximum accepted username length
const MaxUsernameLen = 64

// ValidateUsername checks the username against the accepted format
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if len(username) > MaxUsernameLen {
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	}

	if !UsernamePattern.MatchString(username) {
		return fmt.Errorf("username can only contain letters, numbers, underscores, dots and dashes")
	}

	return nil
}

// ValidatePassword rejects an empty password locally; everything else is the
// backend's call (a rejected login surfaces the backend message as is).
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	return nil
}
