package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/clio/internal/logger"
	"github.com/MKhiriev/clio/internal/service"
	"github.com/MKhiriev/clio/models"
)

var (
	ErrNoServices = errors.New("tui: no services provided")
	ErrNoNotifier = errors.New("tui: no notifier provided")
)

// TUI runs the interactive terminal program.
type TUI struct {
	services  *service.ClientServices
	notifier  *Notifier
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New returns a TUI driving services. notifier must be the one passed to the
// playback controller.
func New(services *service.ClientServices, notifier *Notifier, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, ErrNoServices
	}
	if notifier == nil {
		return nil, ErrNoNotifier
	}
	return &TUI{services: services, notifier: notifier, buildInfo: buildInfo, logger: logger}, nil
}

// Run blocks until the user quits or ctx is cancelled. warning, when not
// empty, is shown in the status line at startup.
func (t *TUI) Run(ctx context.Context, warning string) error {
	model := newAppModel(ctx, t.services, t.notifier, t.buildInfo, warning)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if ctx.Err() != nil {
			t.logger.Info().Str("func", "TUI.Run").Msg("ui stopped by context")
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}

	if dropped := t.notifier.Dropped(); dropped > 0 {
		t.logger.Debug().Str("func", "TUI.Run").Int64("dropped", dropped).Msg("notifications dropped")
	}
	return nil
}
