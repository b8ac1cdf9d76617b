package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names registered by [BindFlags].
const (
	flagAddress        = "address"
	flagRequestTimeout = "request-timeout"
	flagDSN            = "dsn"
	flagPruneInterval  = "prune-interval"
	flagDefaultExpiry  = "default-expiry"
	flagDefaultViews   = "default-views"
	flagConfig         = "config"
	flagLogFile        = "log-file"
	flagLogLevel       = "log-level"
)

// BindFlags registers the configuration flags on fs. All flags default to
// their zero value so that an unset flag never hides env or file values.
//
// Flags:
//
//	-a/--address          keylock service base URL
//	--request-timeout     timeout of a single request (e.g. "15s"), none by default
//	-d/--dsn              link history database path
//	--prune-interval      history pruning interval (e.g. "1m")
//	--default-expiry      expiry minutes used for blank or invalid input
//	--default-views       max views used for blank or invalid input
//	-c/--config           JSON or YAML config file
//	--log-file            log file path
//	--log-level           log level (debug, info, warn, error)
func BindFlags(fs *pflag.FlagSet) {
	fs.StringP(flagAddress, "a", "", "keylock service base URL (default "+DefaultHTTPAddress+")")
	fs.Duration(flagRequestTimeout, 0, "request timeout, e.g. 15s (default none)")
	fs.StringP(flagDSN, "d", "", "link history database path")
	fs.Duration(flagPruneInterval, 0, "expired history pruning interval, e.g. 1m")
	fs.Int(flagDefaultExpiry, 0, "expiry in minutes used when input is blank or invalid")
	fs.Int(flagDefaultViews, 0, "max views used when input is blank or invalid")
	fs.StringP(flagConfig, "c", "", "JSON or YAML config file path")
	fs.String(flagLogFile, "", "log file path")
	fs.String(flagLogLevel, "", "log level: debug, info, warn, error")
}

// parseFlags reads the values bound by BindFlags from an already parsed fs.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	var (
		cfg StructuredConfig
		err error
	)

	if cfg.Adapter.HTTPAddress, err = fs.GetString(flagAddress); err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}
	if cfg.Adapter.RequestTimeout, err = fs.GetDuration(flagRequestTimeout); err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}
	if cfg.Storage.DB.DSN, err = fs.GetString(flagDSN); err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}
	if cfg.Workers.PruneInterval, err = fs.GetDuration(flagPruneInterval); err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}
	if cfg.Defaults.ExpireMinutes, err = fs.GetInt(flagDefaultExpiry); err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}
	if cfg.Defaults.MaxViews, err = fs.GetInt(flagDefaultViews); err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}
	if cfg.ConfigFilePath, err = fs.GetString(flagConfig); err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}
	if cfg.App.LogFile, err = fs.GetString(flagLogFile); err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}
	if cfg.App.LogLevel, err = fs.GetString(flagLogLevel); err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}

	return &cfg, nil
}
