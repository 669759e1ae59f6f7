package cli

import (
	"errors"
	"fmt"

	"github.com/safedep/hashbridge/host"
)

// Exit codes.
const (
	ExitSuccess         = 0 // Success
	ExitGeneral         = 1 // General/unknown error
	ExitConfig          = 2 // Invalid YAML, invalid config values
	ExitArgument        = 3 // Missing or mistyped function argument
	ExitRegistration    = 4 // Module failed to load its exports
	ExitUnknownFunction = 5 // Function is not in the export table
	ExitMismatch        = 6 // verify: digest does not match
)

// ExitCoder is an interface for errors that carry a custom exit code and message.
type ExitCoder interface {
	ExitCode() int
	Message() string
}

// cliError is a typed error that carries an exit code.
type cliError struct {
	code    int
	message string
	err     error
}

// NewCLIError creates a new cliError with the given code and message.
func NewCLIError(code int, message string) *cliError {
	return &cliError{
		code:    code,
		message: message,
	}
}

// WrapError creates a new cliError wrapping an underlying error.
func WrapError(code int, message string, err error) *cliError {
	return &cliError{
		code:    code,
		message: message,
		err:     err,
	}
}

// Error implements the error interface.
func (e *cliError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.message, e.err)
	}
	return e.message
}

// ExitCode returns the exit code for this error.
func (e *cliError) ExitCode() int {
	return e.code
}

// Message returns the formatted message for display.
func (e *cliError) Message() string {
	return fmt.Sprintf("Error: %s\n", e.Error())
}

// Unwrap returns the underlying error for errors.Is/errors.As support.
func (e *cliError) Unwrap() error {
	return e.err
}

// ErrConfig creates a configuration error.
func ErrConfig(message string, err error) *cliError {
	return WrapError(ExitConfig, message, err)
}

// ErrRegistration creates a module load error.
func ErrRegistration(err error) *cliError {
	return WrapError(ExitRegistration, "failed to load module", err)
}

// callError classifies an error returned by an exported function call.
func callError(function string, err error) *cliError {
	switch {
	case errors.Is(err, host.ErrArgument):
		return WrapError(ExitArgument, "invalid argument", err)
	case errors.Is(err, host.ErrUnknownFunction):
		return NewCLIError(ExitUnknownFunction, fmt.Sprintf("function not exported: %s", function))
	default:
		return WrapError(ExitGeneral, fmt.Sprintf("call to %s failed", function), err)
	}
}

// ExitCodeOf returns the process exit code for err.
func ExitCodeOf(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var coder ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return ExitGeneral
}
