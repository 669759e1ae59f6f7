package config

import (
	"github.com/spf13/viper"
)

// Must be in sync with bridge.ExportHashSHA256 and wire.CodecJSON. Importing
// those packages here would pull the host runtime into configuration loading.
const (
	defaultFunction = "hash_sha256"
	defaultCodec    = "json"
)

// setDefaults sets all default configuration values.
func setDefaults(v *viper.Viper) {
	// Display defaults
	v.SetDefault("display.colors", string(ColorAuto))
	v.SetDefault("display.format", string(FormatText))

	// Invoke defaults
	v.SetDefault("invoke.codec", defaultCodec)
	v.SetDefault("invoke.default_function", defaultFunction)
}
