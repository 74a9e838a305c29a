package iocli

//go:generate moq -out io_mock.go . IO

// IO is the console's terminal surface.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
	// Confirm asks a yes/no question; only an explicit "y"/"yes" is true.
	Confirm(prompt string) (bool, error)
}
