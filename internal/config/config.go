// Package config loads application configuration from environment
// variables.
package config

import (
	"fmt"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds the server configuration loaded from environment
// variables.
type Config struct {
	// Addr is the HTTP listen address.
	// Environment variable: LEDGERKEEP_ADDR
	Addr string `koanf:"LEDGERKEEP_ADDR"`

	// DBPath is the SQLite database file path.
	// Environment variable: LEDGERKEEP_DB
	DBPath string `koanf:"LEDGERKEEP_DB"`

	// LogLevel is the minimum log level (debug, info, warn, error).
	// Environment variable: LEDGERKEEP_LOG_LEVEL
	LogLevel string `koanf:"LEDGERKEEP_LOG_LEVEL"`

	// UploadLimitMB caps the statement upload body size in megabytes.
	// Environment variable: LEDGERKEEP_UPLOAD_LIMIT_MB
	UploadLimitMB int `koanf:"LEDGERKEEP_UPLOAD_LIMIT_MB"`
}

// Load reads configuration from the environment, applying defaults for
// anything unset.
func Load() (Config, error) {
	cfg := Config{
		Addr:          ":8080",
		DBPath:        "data/ledgerkeep.db",
		LogLevel:      "info",
		UploadLimitMB: 32,
	}

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", nil), nil); err != nil {
		return cfg, fmt.Errorf("load environment: %w", err)
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf", FlatPaths: true}); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
