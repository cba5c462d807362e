// SPDX-License-Identifier: MIT

// Package config loads decenttree CLI and server settings.
//
// Precedence, lowest first: built-in defaults, an optional YAML file,
// DECENTTREE_* environment variables, command-line flags.
// Environment names map to keys by dropping the prefix, lower-casing and
// splitting at the first underscore: DECENTTREE_SERVER_MAX_TAXA → server.max_taxa.
package config

import (
	"time"

	"github.com/katalvlaran/decenttree/starttree"
)

// EnvPrefix selects the environment variables read by Load.
const EnvPrefix = "DECENTTREE_"

// Config is the full configuration tree.
type Config struct {
	Log    LogConfig    `koanf:"log"`
	Build  BuildConfig  `koanf:"build"`
	Server ServerConfig `koanf:"server"`
}

// LogConfig selects the logger level and format.
type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error disabled"`
	JSON  bool   `koanf:"json"`
}

// BuildConfig holds the construction defaults shared by `build` and `serve`.
type BuildConfig struct {
	Algorithm string `koanf:"algorithm" validate:"required"`
	Format    string `koanf:"format" validate:"oneof=phylip json"`
	Threads   int    `koanf:"threads" validate:"gte=0"`
	Precision int    `koanf:"precision" validate:"gte=1,lte=17"`
	Verbosity int    `koanf:"verbosity" validate:"gte=0"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Addr            string        `koanf:"addr" validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	MaxBodyBytes    int64         `koanf:"max_body_bytes" validate:"gt=0"`
	MaxTaxa         int           `koanf:"max_taxa" validate:"gte=3"`
	CacheSize       int           `koanf:"cache_size" validate:"gte=0"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Build: BuildConfig{
			Algorithm: starttree.NJName,
			Format:    "phylip",
			Precision: starttree.DefaultPrecision,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    5 * time.Minute,
			ShutdownTimeout: 10 * time.Second,
			MaxBodyBytes:    64 << 20,
			MaxTaxa:         5000,
			CacheSize:       256,
		},
	}
}
