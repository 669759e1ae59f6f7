package tui

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// TextPresenter renders output as human-readable text. A call renders only its
// result, so output can be captured by scripts; verbose mode adds context.
type TextPresenter struct {
	w         io.Writer
	color     *Colorizer
	verbose   bool
	termWidth int
}

// NewTextPresenter creates a new text presenter.
func NewTextPresenter(opts PresenterOptions) *TextPresenter {
	termWidth := opts.TerminalWidth
	if termWidth == 0 {
		termWidth = GetTerminalWidth(opts.Writer)
	}
	return &TextPresenter{
		w:         opts.Writer,
		color:     NewColorizer(opts.UseColors),
		verbose:   opts.Verbose,
		termWidth: termWidth,
	}
}

// RenderCall renders a call result.
func (p *TextPresenter) RenderCall(call *CallView) error {
	tw := &textWriter{w: p.w}

	if p.verbose {
		signature := fmt.Sprintf("%s(%s)", call.Function, FormatArgs(call.Args))
		tw.printf("%s\n", p.color.Dim(Truncate(signature, p.termWidth)))
	}
	tw.printf("%s\n", p.color.Digest(FormatResult(call.Result)))

	return tw.Err()
}

// RenderExports renders the export table, one function per line.
func (p *TextPresenter) RenderExports(exports *ExportsView) error {
	tw := &textWriter{w: p.w}

	if p.verbose {
		tw.printf("%s\n", p.color.Header("Module "+exports.Module))
	}
	for _, fn := range exports.Functions {
		tw.printf("%s\n", p.color.Function(fn))
	}

	return tw.Err()
}

// RenderVerify renders a digest comparison.
func (p *TextPresenter) RenderVerify(verify *VerifyView) error {
	tw := &textWriter{w: p.w}

	if verify.Match {
		tw.printf("%s %s\n", p.color.Digest("OK"), verify.Actual)
		return tw.Err()
	}

	tw.printf("%s %s(%q)\n", p.color.Error("MISMATCH"), verify.Function, Truncate(verify.Input, p.termWidth))
	tw.printf("%s", verify.Diff)
	if verify.Diff != "" && !strings.HasSuffix(verify.Diff, "\n") {
		tw.printf("\n")
	}

	return tw.Err()
}

// RenderConfig renders the configuration as flattened key/value lines.
func (p *TextPresenter) RenderConfig(config *ConfigView) error {
	tw := &textWriter{w: p.w}

	tw.printf("%s %s\n\n", p.color.Header("Config"), p.color.Path(config.Location))

	flat := make(map[string]any)
	flatten("", config.Values, flat)

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		tw.printf("  %-26s %v\n", k, flat[k])
	}

	return tw.Err()
}

// RenderMessage renders a simple message.
func (p *TextPresenter) RenderMessage(message string) error {
	tw := &textWriter{w: p.w}
	tw.printf("%s\n", message)
	return tw.Err()
}

// FormatResult renders a call result value.
func FormatResult(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return "null"
	default:
		return fmt.Sprint(t)
	}
}

func flatten(prefix string, values map[string]any, out map[string]any) {
	for k, v := range values {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flatten(key, nested, out)
			continue
		}
		out[key] = v
	}
}
