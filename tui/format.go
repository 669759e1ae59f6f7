package tui

import (
	"fmt"
	"strings"
)

// FormatArg renders a call argument the way the caller would have written it:
// strings quoted, other values as-is.
func FormatArg(v any) string {
	switch t := v.(type) {
	case string:
		return fmt.Sprintf("%q", t)
	case nil:
		return "null"
	default:
		return fmt.Sprint(t)
	}
}

// FormatArgs renders a call argument list.
func FormatArgs(args []any) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, FormatArg(a))
	}
	return strings.Join(parts, ", ")
}

// Truncate shortens s to at most max runes, marking the cut with an ellipsis.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if max <= 0 || len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
