package console

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.Color("#5FD7FF")
	colorSuccess = lipgloss.Color("#5FD75F")
	colorWarning = lipgloss.Color("#F4D03F")
	colorError   = lipgloss.Color("#E74C3C")
	colorMuted   = lipgloss.Color("#6C7A89")
)

var styles = struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
	Header:  lipgloss.NewStyle().Underline(true).Foreground(colorAccent),
	Muted:   lipgloss.NewStyle().Foreground(colorMuted),
	Success: lipgloss.NewStyle().Foreground(colorSuccess),
	Warning: lipgloss.NewStyle().Foreground(colorWarning),
	Error:   lipgloss.NewStyle().Foreground(colorError),
}

func (c *Console) toastSuccess(text string) {
	c.io.Println(styles.Success.Render("✓ " + text))
}

func (c *Console) toastWarning(text string) {
	c.io.Println(styles.Warning.Render("⚠ " + text))
}

func (c *Console) toastError(text string) {
	c.io.Println(styles.Error.Render("✗ " + text))
}

func (c *Console) muted(text string) {
	c.io.Println(styles.Muted.Render(text))
}
