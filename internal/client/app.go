package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/keylock/internal/adapter"
	"github.com/MKhiriev/keylock/internal/config"
	"github.com/MKhiriev/keylock/internal/logger"
	"github.com/MKhiriev/keylock/internal/service"
	"github.com/MKhiriev/keylock/internal/store"
	"github.com/MKhiriev/keylock/internal/tui"
	"github.com/MKhiriev/keylock/internal/workers"
	"github.com/MKhiriev/keylock/models"
)

// App owns every long-lived component of the client.
type App struct {
	storages *store.ClientStorages
	services *service.ClientServices
	workers  *workers.Workers
	tui      *tui.TUI
	logger   *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	services := service.NewClientServices(storages, serverAdapter, cfg.Defaults, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create ui: %w", err)
	}

	pruner := workers.NewHistoryPruner(services.HistoryService, cfg.Workers.PruneInterval, log.GetChildLogger())

	return &App{
		storages: storages,
		services: services,
		workers:  workers.NewWorkers(pruner),
		tui:      ui,
		logger:   log,
	}, nil
}

// Services exposes the wired services to the headless commands.
func (a *App) Services() *service.ClientServices {
	return a.services
}

// Run starts the background workers and the TUI. Workers are stopped when
// the TUI exits.
func (a *App) Run(ctx context.Context) error {
	a.workers.Start(ctx)
	defer a.workers.Stop()

	a.logger.Info().Str("func", "App.Run").Msg("tui started")
	if err := a.tui.Run(ctx); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	a.logger.Info().Str("func", "App.Run").Msg("tui finished")

	return nil
}

func (a *App) Close() error {
	a.workers.Stop()
	return a.storages.Close()
}
