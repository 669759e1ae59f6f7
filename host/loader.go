package host

import (
	"errors"
	"fmt"
	"sync"
)

// ModuleMain is the initialization entry point of a module. It runs once, when
// the module is loaded, and registers the module's exports.
type ModuleMain func(m *Module) error

// Load creates a module, runs main against it, and seals it. Any error returned
// by main fails the load; the partially populated module is discarded.
func Load(name string, main ModuleMain) (*Module, error) {
	if main == nil {
		return nil, fmt.Errorf("loading module %s: %w", name, errors.New("module main must not be nil"))
	}

	m := NewModule(name)
	if err := main(m); err != nil {
		return nil, fmt.Errorf("loading module %s: %w", name, err)
	}

	m.seal()
	return m, nil
}

// Loader loads a module at most once per process. Every call to Load after the
// first returns the same module and error.
type Loader struct {
	name string
	main ModuleMain

	once   sync.Once
	module *Module
	err    error
}

// NewLoader creates a loader for the module name with the given main.
func NewLoader(name string, main ModuleMain) *Loader {
	return &Loader{
		name: name,
		main: main,
	}
}

// Load runs the module main on first use and returns the loaded module.
func (l *Loader) Load() (*Module, error) {
	l.once.Do(func() {
		l.module, l.err = Load(l.name, l.main)
	})
	return l.module, l.err
}
