// Package host models the host side of the foreign-function bridge: the values
// that cross the boundary, the per-call function context, and the module export
// table that the host consults to resolve functions by name.
package host

import (
	"encoding/json"
	"fmt"
)

// Kind is the host-runtime type of a Value.
type Kind int

const (
	KindUndefined Kind = iota
	KindNull
	KindBoolean
	KindNumber
	KindString
	KindObject
)

// String returns the host-facing name of the kind.
func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a value owned by the host runtime.
type Value interface {
	// Kind returns the host type of the value.
	Kind() Kind
	// Native returns the value as a plain Go value suitable for encoding.
	Native() any
}

// String is a host text value.
type String string

func (String) Kind() Kind    { return KindString }
func (s String) Native() any { return string(s) }

// Number is a host numeric value.
type Number float64

func (Number) Kind() Kind    { return KindNumber }
func (n Number) Native() any { return float64(n) }

// Boolean is a host boolean value.
type Boolean bool

func (Boolean) Kind() Kind    { return KindBoolean }
func (b Boolean) Native() any { return bool(b) }

// Null is the host null value.
type Null struct{}

func (Null) Kind() Kind  { return KindNull }
func (Null) Native() any { return nil }

// Undefined is the value of an argument the caller did not pass.
type Undefined struct{}

func (Undefined) Kind() Kind  { return KindUndefined }
func (Undefined) Native() any { return nil }

// Object wraps any composite host value (arrays, maps, byte strings).
// The bridge never unpacks objects; they exist so that a caller passing one
// gets a precise type error.
type Object struct {
	v any
}

func (Object) Kind() Kind    { return KindObject }
func (o Object) Native() any { return o.v }

// FromAny converts a decoded wire value into a host Value.
func FromAny(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case string:
		return String(t)
	case bool:
		return Boolean(t)
	case float64:
		return Number(t)
	case float32:
		return Number(t)
	case int:
		return Number(t)
	case int64:
		return Number(t)
	case uint64:
		return Number(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Object{v: t}
		}
		return Number(f)
	default:
		return Object{v: t}
	}
}

// FromStrings converts plain strings into host String values.
func FromStrings(args []string) []Value {
	values := make([]Value, 0, len(args))
	for _, a := range args {
		values = append(values, String(a))
	}
	return values
}
