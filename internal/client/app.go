package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/clio/internal/adapter"
	"github.com/MKhiriev/clio/internal/config"
	"github.com/MKhiriev/clio/internal/logger"
	"github.com/MKhiriev/clio/internal/player"
	"github.com/MKhiriev/clio/internal/service"
	"github.com/MKhiriev/clio/internal/store"
	"github.com/MKhiriev/clio/internal/tui"
	"github.com/MKhiriev/clio/models"
)

var ErrNoConfig = errors.New("client: no config provided")

// App owns the lifetime of every client component.
type App struct {
	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, ErrNoConfig
	}
	return &App{cfg: cfg, buildInfo: buildInfo, logger: logger}, nil
}

// Run wires the components, runs the UI until the user quits or ctx is
// cancelled and shuts everything down. Playback is always stopped before the
// database is closed.
func (a *App) Run(ctx context.Context) error {
	storages, err := store.NewClientStorages(ctx, a.cfg.Storage, a.logger)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			a.logger.Err(closeErr).Str("func", "App.Run").Msg("close storage")
		}
	}()

	directory, err := adapter.NewDirectoryAdapter(a.cfg.Directory, a.cfg.App, a.logger)
	if err != nil {
		return fmt.Errorf("create directory adapter: %w", err)
	}
	warning := a.discover(ctx, directory)

	notifier := tui.NewNotifier(tui.DefaultNotifierBuffer)
	defer notifier.Close()

	controller := player.NewController(
		a.cfg.Player,
		player.NewMPVLauncher(a.cfg.Player.Binary, a.logger),
		player.NewIPCClient(a.cfg.Player.IPCTimeout),
		notifier,
		a.logger,
	)
	defer func() {
		if closeErr := controller.Close(); closeErr != nil && !errors.Is(closeErr, player.ErrControllerClosed) {
			a.logger.Err(closeErr).Str("func", "App.Run").Msg("close player")
		}
	}()

	services, err := service.NewClientServices(storages, directory, controller, a.cfg.Directory, a.logger)
	if err != nil {
		return fmt.Errorf("create client services: %w", err)
	}

	ui, err := tui.New(services, notifier, a.buildInfo, a.logger)
	if err != nil {
		return fmt.Errorf("create ui: %w", err)
	}

	a.logger.Info().
		Str("func", "App.Run").
		Str("directory", directory.BaseURL()).
		Str("version", a.buildInfo.BuildVersion()).
		Msg("client started")
	return ui.Run(ctx, warning)
}

// discover switches the directory to a random mirror when enabled. A failure
// is not fatal: the returned warning is shown to the user.
func (a *App) discover(ctx context.Context, directory adapter.DirectoryAdapter) string {
	if !a.cfg.Directory.Discover {
		return ""
	}

	dctx, cancel := context.WithTimeout(ctx, a.cfg.Directory.RequestTimeout)
	defer cancel()

	if err := directory.Discover(dctx); err != nil {
		a.logger.Warn().Err(err).Str("func", "App.discover").Str("fallback", directory.BaseURL()).Msg("server discovery failed")
		return "server discovery failed, using " + directory.BaseURL()
	}
	return ""
}
