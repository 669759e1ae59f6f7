package host

import (
	"errors"
	"fmt"
)

var (
	// ErrArgument matches every *ArgumentError.
	ErrArgument = errors.New("argument error")
	// ErrRegistration matches every *RegistrationError.
	ErrRegistration = errors.New("registration error")
	// ErrUnknownFunction is returned when a caller names a function the module
	// does not export.
	ErrUnknownFunction = errors.New("unknown function")
)

// ArgumentError reports a missing or mistyped call argument.
type ArgumentError struct {
	// Function is the exported name being called.
	Function string
	// Index is the positional index of the argument.
	Index int
	// Expected is the kind the function requires. KindUndefined when any kind is accepted.
	Expected Kind
	// Got is the kind the caller passed. KindUndefined when the argument is missing.
	Got Kind
}

func (e *ArgumentError) Error() string {
	prefix := ""
	if e.Function != "" {
		prefix = e.Function + ": "
	}
	if e.Got == KindUndefined {
		if e.Expected == KindUndefined {
			return fmt.Sprintf("%smissing required argument %d", prefix, e.Index)
		}
		return fmt.Sprintf("%smissing required argument %d (%s)", prefix, e.Index, e.Expected)
	}
	return fmt.Sprintf("%sargument %d: expected %s, got %s", prefix, e.Index, e.Expected, e.Got)
}

// Is reports whether target is ErrArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrArgument
}

// RegistrationError reports a failure to add a function to a module's export table.
type RegistrationError struct {
	Module string
	Name   string
	Reason string
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("module %s: cannot export %q: %s", e.Module, e.Name, e.Reason)
}

// Is reports whether target is ErrRegistration.
func (e *RegistrationError) Is(target error) bool {
	return target == ErrRegistration
}
