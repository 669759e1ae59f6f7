package host

// FunctionContext carries the arguments of a single call across the boundary.
// It is valid only for the duration of the call.
type FunctionContext struct {
	function string
	args     []Value
}

// NewFunctionContext creates a context for calling function with args.
func NewFunctionContext(function string, args []Value) *FunctionContext {
	return &FunctionContext{
		function: function,
		args:     args,
	}
}

// Function returns the exported name being called.
func (cx *FunctionContext) Function() string {
	return cx.function
}

// Len returns the number of arguments passed by the caller.
func (cx *FunctionContext) Len() int {
	return len(cx.args)
}

// Argument returns the argument at index i. A missing argument is an
// *ArgumentError, not an Undefined value.
func (cx *FunctionContext) Argument(i int) (Value, error) {
	return cx.argument(i, KindUndefined)
}

// StringArgument returns the argument at index i as text.
func (cx *FunctionContext) StringArgument(i int) (string, error) {
	v, err := cx.argument(i, KindString)
	if err != nil {
		return "", err
	}

	s, ok := v.(String)
	if !ok {
		return "", &ArgumentError{
			Function: cx.function,
			Index:    i,
			Expected: KindString,
			Got:      v.Kind(),
		}
	}
	return string(s), nil
}

// String wraps s as a host value to return to the caller.
func (cx *FunctionContext) String(s string) Value {
	return String(s)
}

func (cx *FunctionContext) argument(i int, expected Kind) (Value, error) {
	if i < 0 || i >= len(cx.args) || cx.args[i] == nil || cx.args[i].Kind() == KindUndefined {
		return nil, &ArgumentError{
			Function: cx.function,
			Index:    i,
			Expected: expected,
			Got:      KindUndefined,
		}
	}
	return cx.args[i], nil
}
