// Package config provides configuration management using Viper.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix is the prefix for environment variable overrides,
// e.g. HASHBRIDGE_INVOKE_CODEC=cbor.
const envPrefix = "HASHBRIDGE"

// ColorMode represents the color output mode.
type ColorMode string

const (
	// ColorAuto automatically detects terminal support.
	ColorAuto ColorMode = "auto"
	// ColorAlways always uses colors.
	ColorAlways ColorMode = "always"
	// ColorNever never uses colors.
	ColorNever ColorMode = "never"
)

// OutputFormat represents how command results are rendered.
type OutputFormat string

const (
	// FormatText renders human-readable text.
	FormatText OutputFormat = "text"
	// FormatJSON renders JSON.
	FormatJSON OutputFormat = "json"
)

// Config holds all configuration values.
type Config struct {
	Display DisplayConfig `mapstructure:"display"`
	Invoke  InvokeConfig  `mapstructure:"invoke"`
}

// DisplayConfig holds display-related settings.
type DisplayConfig struct {
	Colors ColorMode    `mapstructure:"colors"`
	Format OutputFormat `mapstructure:"format"`
}

// InvokeConfig holds settings for calling exported functions.
type InvokeConfig struct {
	// Codec is the wire codec used by the stream host: json or cbor.
	Codec string `mapstructure:"codec"`
	// DefaultFunction is the export the hash command calls.
	DefaultFunction string `mapstructure:"default_function"`
}

// Paths holds resolved filesystem paths.
type Paths struct {
	ConfigFile string
	ConfigDir  string
}

// Load loads configuration from the given path or default locations.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigType("yaml")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		paths := ResolvePaths()

		v.SetConfigName("config")
		v.AddConfigPath(paths.ConfigDir)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns a Config with all default values.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	_ = v.Unmarshal(&cfg)

	return &cfg
}

// ResolvePaths returns the resolved filesystem paths for the current platform.
func ResolvePaths() *Paths {
	configDir := getConfigDir()

	return &Paths{
		ConfigFile: filepath.Join(configDir, "config.yaml"),
		ConfigDir:  configDir,
	}
}

// ShouldUseColors returns true if colors should be used based on config and
// whether the output is a terminal.
func (c *Config) ShouldUseColors(isTerminal bool) bool {
	switch c.Display.Colors {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal
	}
}
