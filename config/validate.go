package config

import (
	"fmt"
)

// validate checks the configuration for errors.
func validate(cfg *Config) error {
	if !isValidColorMode(cfg.Display.Colors) {
		return fmt.Errorf("invalid display.colors: %s (must be auto, always, or never)", cfg.Display.Colors)
	}

	if !isValidOutputFormat(cfg.Display.Format) {
		return fmt.Errorf("invalid display.format: %s (must be text or json)", cfg.Display.Format)
	}

	if !knownCodecs[cfg.Invoke.Codec] {
		return fmt.Errorf("invalid invoke.codec: %s (must be json or cbor)", cfg.Invoke.Codec)
	}

	if cfg.Invoke.DefaultFunction == "" {
		return fmt.Errorf("invoke.default_function must not be empty")
	}

	return nil
}

// isValidColorMode returns true if the given mode is valid.
func isValidColorMode(mode ColorMode) bool {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// isValidOutputFormat returns true if the given format is valid.
func isValidOutputFormat(format OutputFormat) bool {
	switch format {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// knownCodecs lists the valid wire codecs.
var knownCodecs = map[string]bool{
	"json": true,
	"cbor": true,
}
