package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/keylock/internal/config"
	"github.com/MKhiriev/keylock/internal/logger"
	"github.com/MKhiriev/keylock/models"
)

func testConfig(address string) *config.ClientConfig {
	return &config.ClientConfig{
		Adapter: config.ClientAdapter{HTTPAddress: address, RequestTimeout: 2 * time.Second},
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: ":memory:"}},
		Workers: config.ClientWorkers{PruneInterval: time.Minute},
		Defaults: config.ClientDefaults{
			ExpireMinutes: config.DefaultExpireMinutes,
			MaxViews:      config.DefaultMaxViews,
		},
	}
}

func TestNewApp_SharesAndRecordsHistory(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/share", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"url":"https://keylock.example/secret/abc123"}`))
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	ctx := context.Background()
	app, err := NewApp(ctx, testConfig(srv.URL), models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	result, err := app.Services().ShareService.Share(ctx, models.ShareInput{Secret: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "abc123", result.Reference)

	entries, err := app.Services().HistoryService.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.WithinDuration(t, result.ExpiresAt, entries[0].ExpiresAt, time.Millisecond)
	assert.Equal(t, 10, entries[0].ExpireMinutes)
	assert.Equal(t, 3, entries[0].MaxViews)
}

func TestNewApp_InvalidAddress(t *testing.T) {
	_, err := NewApp(context.Background(), testConfig("   "), models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create server adapter")
}

func TestApp_CloseTwice(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig("http://127.0.0.1:1"), models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)

	assert.NoError(t, app.Close())
	assert.NoError(t, app.Close())
}
