package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewManager_NoConfigFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")

	mgr, err := NewManager(configFile)
	require.NoError(t, err)
	require.NotNil(t, mgr)

	assert.Equal(t, configFile, mgr.ConfigPath())
	assert.NotNil(t, mgr.AllSettings())
	assert.Equal(t, "hash_sha256", mgr.Get("invoke.default_function"))
}

func TestNewManager_WithExistingConfig(t *testing.T) {
	configFile := writeConfig(t, `
invoke:
  codec: cbor
`)

	mgr, err := NewManager(configFile)
	require.NoError(t, err)

	assert.Equal(t, "cbor", mgr.Get("invoke.codec"))
	assert.Equal(t, "auto", mgr.Get("display.colors"))
}

func TestManager_Get_ReturnsDefaults(t *testing.T) {
	mgr, err := NewManager(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	tests := []struct {
		key      string
		expected interface{}
	}{
		{"display.colors", "auto"},
		{"display.format", "text"},
		{"invoke.codec", "json"},
		{"invoke.default_function", "hash_sha256"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, mgr.Get(tt.key))
		})
	}
}

func TestManager_Set_CreatesCompleteConfigFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "nested", "config.yaml")

	mgr, err := NewManager(configFile)
	require.NoError(t, err)

	require.NoError(t, mgr.Set("display.format", "json"))

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)

	var configMap map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &configMap))

	assert.Contains(t, configMap, "display")
	assert.Contains(t, configMap, "invoke")

	display, ok := configMap["display"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "json", display["format"])
	assert.Equal(t, "auto", display["colors"])

	cfg, err := Load(configFile)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, cfg.Display.Format)
}

func TestManager_Set_RejectsInvalid(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")

	mgr, err := NewManager(configFile)
	require.NoError(t, err)

	err = mgr.Set("invoke.codec", "xml")
	assert.ErrorContains(t, err, "invalid invoke.codec")
	assert.Equal(t, "json", mgr.Get("invoke.codec"))

	err = mgr.Set("no.such.key", "x")
	assert.ErrorContains(t, err, "unknown config key")

	_, err = os.Stat(configFile)
	assert.True(t, os.IsNotExist(err))
}

func TestManager_Reset(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")

	mgr, err := NewManager(configFile)
	require.NoError(t, err)
	require.NoError(t, mgr.Set("display.colors", "never"))
	assert.Equal(t, "never", mgr.Get("display.colors"))

	require.NoError(t, mgr.Reset())
	assert.Equal(t, "auto", mgr.Get("display.colors"))

	_, err = os.Stat(configFile)
	assert.True(t, os.IsNotExist(err))

	// Reset with no file is not an error.
	require.NoError(t, mgr.Reset())
}

func TestManager_HasKey(t *testing.T) {
	mgr, err := NewManager(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.True(t, mgr.HasKey("invoke.codec"))
	assert.False(t, mgr.HasKey("storage.path"))
}

func TestParseValue(t *testing.T) {
	assert.Equal(t, true, ParseValue("true"))
	assert.Equal(t, false, ParseValue("false"))
	assert.Equal(t, []string{"a", "b"}, ParseValue("[a, b]"))
	assert.Equal(t, "cbor", ParseValue("cbor"))
}
