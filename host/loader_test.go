package host

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	m, err := Load("test", func(m *Module) error {
		return m.ExportFunction("echo", echo)
	})
	require.NoError(t, err)

	assert.True(t, m.Sealed())
	assert.Equal(t, "test", m.Name())
	assert.Equal(t, []string{"echo"}, m.Exports())

	err = m.ExportFunction("late", echo)
	assert.ErrorIs(t, err, ErrRegistration)
}

func TestLoad_MainFailure(t *testing.T) {
	m, err := Load("test", func(m *Module) error {
		if err := m.ExportFunction("echo", echo); err != nil {
			return err
		}
		return m.ExportFunction("echo", echo)
	})
	require.Error(t, err)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrRegistration)
	assert.Contains(t, err.Error(), "loading module test")
}

func TestLoad_NilMain(t *testing.T) {
	m, err := Load("test", nil)
	assert.Error(t, err)
	assert.Nil(t, m)
}

func TestLoader_RunsMainOnce(t *testing.T) {
	var calls int
	loader := NewLoader("test", func(m *Module) error {
		calls++
		return m.ExportFunction("echo", echo)
	})

	var wg sync.WaitGroup
	modules := make([]*Module, 8)
	for i := range modules {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m, err := loader.Load()
			assert.NoError(t, err)
			modules[i] = m
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, calls)
	for _, m := range modules {
		assert.Same(t, modules[0], m)
	}
}

func TestLoader_RemembersFailure(t *testing.T) {
	boom := errors.New("boom")
	var calls int
	loader := NewLoader("test", func(m *Module) error {
		calls++
		return boom
	})

	_, err := loader.Load()
	assert.ErrorIs(t, err, boom)
	_, err = loader.Load()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}
