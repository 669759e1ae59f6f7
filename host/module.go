package host

import (
	"fmt"
	"sort"
	"sync"
)

// Function is a function exported to the host runtime.
type Function func(cx *FunctionContext) (Value, error)

// Module is the export table of a loaded module. Functions are added while the
// module main runs; once the module is sealed the table is read-only.
type Module struct {
	name string

	mu      sync.RWMutex
	exports map[string]Function
	sealed  bool
}

// NewModule creates an empty, unsealed module.
func NewModule(name string) *Module {
	return &Module{
		name:    name,
		exports: make(map[string]Function),
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return m.name
}

// ExportFunction adds fn to the export table under name.
func (m *Module) ExportFunction(name string, fn Function) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case m.sealed:
		return &RegistrationError{Module: m.name, Name: name, Reason: "module is already loaded"}
	case name == "":
		return &RegistrationError{Module: m.name, Name: name, Reason: "name must not be empty"}
	case fn == nil:
		return &RegistrationError{Module: m.name, Name: name, Reason: "function must not be nil"}
	}

	if _, exists := m.exports[name]; exists {
		return &RegistrationError{Module: m.name, Name: name, Reason: "already exported"}
	}

	m.exports[name] = fn
	return nil
}

// Lookup retrieves an exported function by name.
func (m *Module) Lookup(name string) (Function, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	fn, ok := m.exports[name]
	return fn, ok
}

// Exports returns the exported names in sorted order.
func (m *Module) Exports() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.exports))
	for name := range m.exports {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call invokes the exported function name with args. A function that returns
// neither a value nor an error yields Undefined.
func (m *Module) Call(name string, args ...Value) (Value, error) {
	fn, ok := m.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFunction, name)
	}

	result, err := fn(NewFunctionContext(name, args))
	if err != nil {
		return nil, err
	}
	if result == nil {
		return Undefined{}, nil
	}
	return result, nil
}

// Sealed reports whether the module has finished loading.
func (m *Module) Sealed() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sealed
}

func (m *Module) seal() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sealed = true
}
