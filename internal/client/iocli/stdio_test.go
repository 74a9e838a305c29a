package iocli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
}

func TestPrintlnAndPrintf(t *testing.T) {
	stdio := NewStdio()

	assert.NotPanics(t, func() {
		stdio.Println("hello", "world")
	})
	assert.NotPanics(t, func() {
		stdio.Printf("test %d %s", 1, "abc")
	})
}

// withStdin feeds input through a pipe in place of os.Stdin.
func withStdin(t *testing.T, input string, fn func(io IO)) {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	go func() {
		_, _ = w.Write([]byte(input))
		_ = w.Close()
	}()

	oldStdin := os.Stdin
	defer func() { os.Stdin = oldStdin }()
	os.Stdin = r

	fn(NewStdio())
}

func TestReadInput(t *testing.T) {
	withStdin(t, "user input\n", func(io IO) {
		result, err := io.ReadInput("Prompt: ")
		assert.NoError(t, err)
		assert.Equal(t, "user input", result)
	})
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"\n", false},
		{"anything\n", false},
	}

	for _, tt := range tests {
		withStdin(t, tt.input, func(io IO) {
			got, err := io.Confirm("Delete? [y/N]: ")
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
