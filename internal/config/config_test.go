package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"APP_LOG_FILE",
	"APP_LOG_LEVEL",
	"ADAPTER_ADDRESS",
	"ADAPTER_REQUEST_TIMEOUT",
	"STORAGE_DB_DSN",
	"WORKERS_PRUNE_INTERVAL",
	"DEFAULTS_EXPIRE_MINUTES",
	"DEFAULTS_MAX_VIEWS",
	"CONFIG",
}

// clearConfigEnv убирает переменные окружения, чтобы тесты не зависели от машины.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func parsedFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestGetStructuredConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Zero(t, cfg.Adapter.RequestTimeout, "no client-side timeout unless configured")
	assert.Equal(t, DefaultPruneInterval, cfg.Workers.PruneInterval)
	assert.Equal(t, DefaultExpireMinutes, cfg.Defaults.ExpireMinutes)
	assert.Equal(t, DefaultMaxViews, cfg.Defaults.MaxViews)
	assert.Equal(t, DefaultLogLevel, cfg.App.LogLevel)
	assert.NotEmpty(t, cfg.Storage.DB.DSN)
}

func TestGetStructuredConfig_Env(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("ADAPTER_ADDRESS", "http://localhost:9000")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "3s")
	t.Setenv("STORAGE_DB_DSN", ":memory:")
	t.Setenv("WORKERS_PRUNE_INTERVAL", "30s")
	t.Setenv("DEFAULTS_EXPIRE_MINUTES", "60")
	t.Setenv("DEFAULTS_MAX_VIEWS", "1")
	t.Setenv("APP_LOG_LEVEL", "debug")

	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, ":memory:", cfg.Storage.DB.DSN)
	assert.Equal(t, 30*time.Second, cfg.Workers.PruneInterval)
	assert.Equal(t, 60, cfg.Defaults.ExpireMinutes)
	assert.Equal(t, 1, cfg.Defaults.MaxViews)
	assert.Equal(t, "debug", cfg.App.LogLevel)
}

func TestGetStructuredConfig_InvalidEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("DEFAULTS_MAX_VIEWS", "many")

	_, err := GetStructuredConfig(nil)
	require.Error(t, err)
}

func TestGetStructuredConfig_FlagsOverrideEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("ADAPTER_ADDRESS", "http://from-env")
	t.Setenv("DEFAULTS_MAX_VIEWS", "7")

	fs := parsedFlags(t, "-a", "http://from-flag", "--request-timeout", "2s", "--default-expiry", "5")

	cfg, err := GetStructuredConfig(fs)
	require.NoError(t, err)

	assert.Equal(t, "http://from-flag", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 5, cfg.Defaults.ExpireMinutes)
	assert.Equal(t, 7, cfg.Defaults.MaxViews, "unset flag must not hide env")
}

func TestGetStructuredConfig_JSONFile(t *testing.T) {
	clearConfigEnv(t)
	path := writeFile(t, "cfg.json", `{
		"adapter": {"http_address": "http://json-host", "request_timeout": "4s"},
		"storage": {"db": {"dsn": "/tmp/json.db"}},
		"workers": {"prune_interval": "2m"},
		"defaults": {"expire_minutes": 15, "max_views": 2}
	}`)
	t.Setenv("ADAPTER_ADDRESS", "http://env-host")

	fs := parsedFlags(t, "-c", path)

	cfg, err := GetStructuredConfig(fs)
	require.NoError(t, err)

	assert.Equal(t, "http://env-host", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 4*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 2*time.Minute, cfg.Workers.PruneInterval)
	assert.Equal(t, 15, cfg.Defaults.ExpireMinutes)
	assert.Equal(t, 2, cfg.Defaults.MaxViews)
}

func TestGetStructuredConfig_YAMLFile(t *testing.T) {
	clearConfigEnv(t)
	path := writeFile(t, "cfg.yaml", `
adapter:
  http_address: http://yaml-host
  request_timeout: 9s
workers:
  prune_interval: 10s
defaults:
  max_views: 4
`)
	t.Setenv("CONFIG", path)

	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "http://yaml-host", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 9*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.Workers.PruneInterval)
	assert.Equal(t, 4, cfg.Defaults.MaxViews)
	assert.Equal(t, DefaultExpireMinutes, cfg.Defaults.ExpireMinutes)
}

func TestGetStructuredConfig_FileErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.json") },
		},
		{
			name: "broken json",
			path: func(t *testing.T) string { return writeFile(t, "bad.json", "{") },
		},
		{
			name: "bad duration",
			path: func(t *testing.T) string {
				return writeFile(t, "bad.yml", "adapter:\n  request_timeout: soon\n")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			t.Setenv("CONFIG", tt.path(t))

			_, err := GetStructuredConfig(nil)
			require.Error(t, err)
		})
	}
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalJSON([]byte(`"1m30s"`)))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, d.UnmarshalJSON([]byte(`1000`)))
	assert.Equal(t, time.Microsecond, time.Duration(d))

	assert.Error(t, d.UnmarshalJSON([]byte(`"later"`)))
	assert.Error(t, d.UnmarshalJSON([]byte(`true`)))
}

func TestGetClientConfig(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("STORAGE_DB_DSN", ":memory:")

	cfg, err := GetClientConfig(parsedFlags(t, "--default-views", "9"))
	require.NoError(t, err)

	assert.Equal(t, ":memory:", cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, 9, cfg.Defaults.MaxViews)
	assert.Equal(t, DefaultExpireMinutes, cfg.Defaults.ExpireMinutes)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			Adapter:  ClientAdapter{HTTPAddress: "http://host", RequestTimeout: time.Second},
			Storage:  ClientStorage{DB: ClientDB{DSN: ":memory:"}},
			Workers:  ClientWorkers{PruneInterval: time.Minute},
			Defaults: ClientDefaults{ExpireMinutes: 10, MaxViews: 3},
		}
	}

	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*ClientConfig) {}},
		{name: "empty dsn", mutate: func(cfg *ClientConfig) { cfg.Storage.DB.DSN = " " }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty address", mutate: func(cfg *ClientConfig) { cfg.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero timeout means none", mutate: func(cfg *ClientConfig) { cfg.Adapter.RequestTimeout = 0 }},
		{name: "negative timeout", mutate: func(cfg *ClientConfig) { cfg.Adapter.RequestTimeout = -time.Second }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero prune interval", mutate: func(cfg *ClientConfig) { cfg.Workers.PruneInterval = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "negative expiry", mutate: func(cfg *ClientConfig) { cfg.Defaults.ExpireMinutes = -1 }, wantErr: ErrInvalidDefaultsConfigs},
		{name: "zero views", mutate: func(cfg *ClientConfig) { cfg.Defaults.MaxViews = 0 }, wantErr: ErrInvalidDefaultsConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseEnv(t *testing.T) {
	cfg := &StructuredConfig{}
	err := parseEnv(cfg, []string{
		"ADAPTER_ADDRESS=https://share.example.com",
		"WORKERS_PRUNE_INTERVAL=5m",
		"DEFAULTS_MAX_VIEWS=7",
		"UNRELATED=1",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://share.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Minute, cfg.Workers.PruneInterval)
	assert.Equal(t, 7, cfg.Defaults.MaxViews)
	assert.Zero(t, cfg.Defaults.ExpireMinutes)
}

func TestParseEnv_BadValue(t *testing.T) {
	err := parseEnv(&StructuredConfig{}, []string{"ADAPTER_REQUEST_TIMEOUT=soon"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
