package tui

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	functionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	digestStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	pathStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle      = lipgloss.NewStyle().Faint(true)
)

// Colorizer styles text when colors are enabled and returns it unchanged otherwise.
type Colorizer struct {
	enabled bool
}

// NewColorizer creates a new Colorizer.
func NewColorizer(enabled bool) *Colorizer {
	return &Colorizer{enabled: enabled}
}

func (c *Colorizer) apply(style lipgloss.Style, text string) string {
	if !c.enabled {
		return text
	}
	return style.Render(text)
}

// Header formats text as a header.
func (c *Colorizer) Header(text string) string {
	return c.apply(headerStyle, text)
}

// Function formats an exported function name.
func (c *Colorizer) Function(text string) string {
	return c.apply(functionStyle, text)
}

// Digest formats a digest or successful result.
func (c *Colorizer) Digest(text string) string {
	return c.apply(digestStyle, text)
}

// Path formats a file path.
func (c *Colorizer) Path(text string) string {
	return c.apply(pathStyle, text)
}

// Error formats error text.
func (c *Colorizer) Error(text string) string {
	return c.apply(errorStyle, text)
}

// Dim formats secondary text.
func (c *Colorizer) Dim(text string) string {
	return c.apply(dimStyle, text)
}
