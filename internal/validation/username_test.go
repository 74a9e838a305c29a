package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{
			name:     "valid username - lowercase",
			username: "alice",
			wantErr:  false,
		},
		{
			name:     "valid username - mixed case with digits",
			username: "Operator42",
			wantErr:  false,
		},
		{
			name:     "valid username - dots and dashes",
			username: "alice.smith-2",
			wantErr:  false,
		},
		{
			name:     "single character is allowed",
			username: "a",
			wantErr:  false,
		},
		{
			name:     "empty username",
			username: "",
			wantErr:  true,
		},
		{
			name:     "too long",
			username: strings.Repeat("a", MaxUsernameLen+1),
			wantErr:  true,
		},
		{
			name:     "embedded space",
			username: "alice smith",
			wantErr:  true,
		},
		{
			name:     "non-latin characters",
			username: "алиса",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword(""))
	assert.NoError(t, ValidatePassword("x"))
	assert.NoError(t, ValidatePassword("correct horse battery staple"))
}
