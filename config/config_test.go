package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	configFile := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(configFile, []byte(content), 0644)
	require.NoError(t, err)
	return configFile
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NotNil(t, cfg)

	assert.Equal(t, ColorAuto, cfg.Display.Colors)
	assert.Equal(t, FormatText, cfg.Display.Format)
	assert.Equal(t, "json", cfg.Invoke.Codec)
	assert.Equal(t, "hash_sha256", cfg.Invoke.DefaultFunction)
}

func TestLoad_ValidConfig(t *testing.T) {
	configFile := writeConfig(t, `
display:
  colors: never
  format: json
invoke:
  codec: cbor
  default_function: hash_blake3
`)

	cfg, err := Load(configFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, ColorNever, cfg.Display.Colors)
	assert.Equal(t, FormatJSON, cfg.Display.Format)
	assert.Equal(t, "cbor", cfg.Invoke.Codec)
	assert.Equal(t, "hash_blake3", cfg.Invoke.DefaultFunction)
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	configFile := writeConfig(t, `
display:
  colors: always
`)

	cfg, err := Load(configFile)
	require.NoError(t, err)

	assert.Equal(t, ColorAlways, cfg.Display.Colors)
	assert.Equal(t, FormatText, cfg.Display.Format)
	assert.Equal(t, "hash_sha256", cfg.Invoke.DefaultFunction)
}

func TestLoad_EnvOverride(t *testing.T) {
	configFile := writeConfig(t, `
display:
  colors: never
`)
	t.Setenv("HASHBRIDGE_INVOKE_CODEC", "cbor")

	cfg, err := Load(configFile)
	require.NoError(t, err)
	assert.Equal(t, "cbor", cfg.Invoke.Codec)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		contains string
	}{
		{
			name: "invalid color mode",
			content: `
display:
  colors: rainbow
`,
			contains: "invalid display.colors",
		},
		{
			name: "invalid format",
			content: `
display:
  format: xml
`,
			contains: "invalid display.format",
		},
		{
			name: "invalid codec",
			content: `
invoke:
  codec: protobuf
`,
			contains: "invalid invoke.codec",
		},
		{
			name: "empty default function",
			content: `
invoke:
  default_function: ""
`,
			contains: "invoke.default_function must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestLoad_NonExistentFile_ReturnsError(t *testing.T) {
	nonExistentFile := filepath.Join(t.TempDir(), "nonexistent.yaml")

	// When an explicit config path is given, the file must exist
	cfg, err := Load(nonExistentFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_MalformedYAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
display:
  colors: never
  this is not valid yaml
`))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestConfig_ShouldUseColors(t *testing.T) {
	cfg := Default()

	cfg.Display.Colors = ColorAlways
	assert.True(t, cfg.ShouldUseColors(false))

	cfg.Display.Colors = ColorNever
	assert.False(t, cfg.ShouldUseColors(true))

	cfg.Display.Colors = ColorAuto
	assert.True(t, cfg.ShouldUseColors(true))
	assert.False(t, cfg.ShouldUseColors(false))
}

func TestResolvePaths(t *testing.T) {
	paths := ResolvePaths()

	assert.NotEmpty(t, paths.ConfigDir)
	assert.Contains(t, paths.ConfigFile, "config.yaml")
	assert.Contains(t, paths.ConfigDir, "hashbridge")
}
