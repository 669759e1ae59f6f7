// Package tui provides the presentation layer for terminal output.
package tui

import (
	"io"
	"os"
)

// Format represents the output format.
type Format string

const (
	// FormatText is the default human-readable format.
	FormatText Format = "text"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
)

// ParseFormat returns the Format named by s, falling back to FormatText.
func ParseFormat(s string) Format {
	switch s {
	case string(FormatJSON):
		return FormatJSON
	default:
		return FormatText
	}
}

// Presenter defines the interface for output rendering.
type Presenter interface {
	// RenderCall renders the result of calling an exported function.
	RenderCall(call *CallView) error

	// RenderExports renders a module's export table.
	RenderExports(exports *ExportsView) error

	// RenderVerify renders a digest comparison.
	RenderVerify(verify *VerifyView) error

	// RenderConfig renders the configuration.
	RenderConfig(config *ConfigView) error

	// RenderMessage renders a simple message.
	RenderMessage(message string) error
}

// PresenterOptions configures presenter behavior.
type PresenterOptions struct {
	// Writer is the output destination.
	Writer io.Writer
	// UseColors indicates if colors should be used.
	UseColors bool
	// Verbose increases output verbosity.
	Verbose bool
	// TerminalWidth bounds how much of a long input is echoed.
	// If 0, the width will be auto-detected.
	TerminalWidth int
}

// NewPresenter creates a new presenter for the given format.
func NewPresenter(format Format, opts PresenterOptions) Presenter {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	switch format {
	case FormatJSON:
		return NewJSONPresenter(opts)
	default:
		return NewTextPresenter(opts)
	}
}
