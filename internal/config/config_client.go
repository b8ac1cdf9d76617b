package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// ClientApp holds process-level client settings.
type ClientApp struct {
	LogFile  string
	LogLevel string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the keylock service.
	HTTPAddress string
	// RequestTimeout is the timeout for a single outbound request. Zero
	// disables it.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite database path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// PruneInterval defines how often expired history entries are removed.
	PruneInterval time.Duration
}

// ClientDefaults are the fallbacks for blank or invalid expiry and view
// input.
type ClientDefaults struct {
	ExpireMinutes int
	MaxViews      int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App      ClientApp
	Adapter  ClientAdapter
	Storage  ClientStorage
	Workers  ClientWorkers
	Defaults ClientDefaults
}

// GetClientConfig builds and validates the client configuration. fs is the
// flag set populated by [BindFlags] and already parsed; it may be nil.
func GetClientConfig(fs *pflag.FlagSet) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(fs)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			LogFile:  cfg.App.LogFile,
			LogLevel: cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{PruneInterval: cfg.Workers.PruneInterval},
		Defaults: ClientDefaults{
			ExpireMinutes: cfg.Defaults.ExpireMinutes,
			MaxViews:      cfg.Defaults.MaxViews,
		},
	}

	if err = clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}
