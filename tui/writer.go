package tui

import (
	"fmt"
	"io"
)

// textWriter wraps an io.Writer and captures the first write error,
// skipping all subsequent writes after an error occurs.
type textWriter struct {
	w   io.Writer
	err error
}

// printf writes a formatted string, doing nothing if a prior write failed.
func (tw *textWriter) printf(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.w, format, args...)
}

// Err returns the first error encountered during any write, or nil.
func (tw *textWriter) Err() error {
	return tw.err
}
