// Package wire implements the stdin/stdout calling convention used when an
// external process hosts the bridge module.
package wire

import (
	"errors"

	"github.com/safedep/hashbridge/host"
)

// Fault kinds reported to the caller.
const (
	FaultArgument        = "argument"
	FaultUnknownFunction = "unknown_function"
	FaultInvalidRequest  = "invalid_request"
	FaultInternal        = "internal"
)

// Request is a single function call from the host.
type Request struct {
	ID       string `json:"id,omitempty" cbor:"id,omitempty"`
	Function string `json:"function" cbor:"function"`
	Args     []any  `json:"args,omitempty" cbor:"args,omitempty"`
}

// Response is the reply to exactly one Request.
type Response struct {
	ID     string `json:"id" cbor:"id"`
	Result any    `json:"result,omitempty" cbor:"result,omitempty"`
	Error  *Fault `json:"error,omitempty" cbor:"error,omitempty"`
}

// Fault is an error surfaced to the caller.
type Fault struct {
	Kind    string `json:"kind" cbor:"kind"`
	Message string `json:"message" cbor:"message"`
}

// Values converts the request arguments into host values.
func (r *Request) Values() []host.Value {
	values := make([]host.Value, 0, len(r.Args))
	for _, a := range r.Args {
		values = append(values, host.FromAny(a))
	}
	return values
}

// NewFault classifies err for the caller.
func NewFault(err error) *Fault {
	kind := FaultInternal
	switch {
	case errors.Is(err, host.ErrArgument):
		kind = FaultArgument
	case errors.Is(err, host.ErrUnknownFunction):
		kind = FaultUnknownFunction
	}

	return &Fault{
		Kind:    kind,
		Message: err.Error(),
	}
}
