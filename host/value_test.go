package host

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromAny(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected Kind
	}{
		{name: "nil is null", input: nil, expected: KindNull},
		{name: "string", input: "abc", expected: KindString},
		{name: "empty string", input: "", expected: KindString},
		{name: "bool", input: true, expected: KindBoolean},
		{name: "float64", input: 42.5, expected: KindNumber},
		{name: "int", input: 7, expected: KindNumber},
		{name: "uint64 from cbor", input: uint64(7), expected: KindNumber},
		{name: "int64 from cbor", input: int64(-7), expected: KindNumber},
		{name: "json number", input: json.Number("12"), expected: KindNumber},
		{name: "array", input: []any{"a"}, expected: KindObject},
		{name: "map", input: map[string]any{"a": 1}, expected: KindObject},
		{name: "bytes", input: []byte("abc"), expected: KindObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FromAny(tt.input).Kind())
		})
	}
}

func TestFromAny_PassesValuesThrough(t *testing.T) {
	v := String("abc")
	assert.Equal(t, v, FromAny(v))
}

func TestValueNative(t *testing.T) {
	assert.Equal(t, "abc", String("abc").Native())
	assert.Equal(t, 1.5, Number(1.5).Native())
	assert.Equal(t, true, Boolean(true).Native())
	assert.Nil(t, Null{}.Native())
	assert.Nil(t, Undefined{}.Native())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "number", KindNumber.String())
	assert.Equal(t, "undefined", KindUndefined.String())
	assert.Equal(t, "kind(99)", Kind(99).String())
}

func TestFromStrings(t *testing.T) {
	values := FromStrings([]string{"a", "b"})
	assert.Equal(t, []Value{String("a"), String("b")}, values)
	assert.Empty(t, FromStrings(nil))
}
