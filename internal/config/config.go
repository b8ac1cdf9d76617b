// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
)

// Built-in defaults applied when no other source sets a value. A zero
// DefaultRequestTimeout leaves requests to the transport's own limits.
const (
	DefaultHTTPAddress    = "https://keylock.onrender.com"
	DefaultRequestTimeout = time.Duration(0)
	DefaultPruneInterval  = time.Minute
	DefaultExpireMinutes  = 10
	DefaultMaxViews       = 3
	DefaultLogLevel       = "info"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging flags, environment variables, an optional config file
// and the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as logging.
	App App `envPrefix:"APP_"`

	// Adapter holds the remote keylock service address and timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local link-history database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Defaults holds the values substituted for blank or invalid expiry and
	// view-count input.
	Defaults Defaults `envPrefix:"DEFAULTS_"`

	// ConfigFilePath is the optional path to a JSON or YAML config file.
	// Env: CONFIG, flag: -c / --config.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogFile is where the client writes its JSON log.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Adapter holds settings of the outbound HTTP transport.
type Adapter struct {
	// HTTPAddress is the base URL of the keylock service
	// (e.g. "https://keylock.onrender.com"). A missing scheme means http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single create or fetch exchange; zero means no
	// client-side limit.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local storage settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the SQLite connection settings for the link history.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds background worker settings.
type Workers struct {
	// PruneInterval defines how often expired history entries are removed.
	// Env: WORKERS_PRUNE_INTERVAL
	PruneInterval time.Duration `env:"PRUNE_INTERVAL"`
}

// Defaults holds the normalizer fallbacks.
type Defaults struct {
	// Env: DEFAULTS_EXPIRE_MINUTES
	ExpireMinutes int `env:"EXPIRE_MINUTES"`
	// Env: DEFAULTS_MAX_VIEWS
	MaxViews int `env:"MAX_VIEWS"`
}

// GetStructuredConfig loads and merges the configuration from all sources
// (see the package documentation for precedence). fs may be nil, in which
// case flags are skipped.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(fs).
		withEnv().
		withFile().
		withDefaults().
		build()
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: DefaultLogLevel,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: defaultDSN()},
		},
		Workers: Workers{
			PruneInterval: DefaultPruneInterval,
		},
		Defaults: Defaults{
			ExpireMinutes: DefaultExpireMinutes,
			MaxViews:      DefaultMaxViews,
		},
	}
}

// defaultDSN places the history database in the user's config directory,
// or in the working directory when that is unknown.
func defaultDSN() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return "keylock.db"
	}
	return filepath.Join(dir, "keylock", "history.db")
}
