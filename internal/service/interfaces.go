package service

import (
	"context"

	"github.com/MKhiriev/clio/internal/player"
	"github.com/MKhiriev/clio/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

var _ Player = (*player.Controller)(nil)

// Player is the playback session controller as seen by the service layer.
// *player.Controller satisfies it.
type Player interface {
	// Play replaces the current session with a new one for streamURL.
	Play(streamURL, station string) error
	// Stop ends the current session, if any.
	Stop() error
	// Close stops playback and shuts the controller down.
	Close() error
	// State reports the controller state.
	State() player.State
}

// StationService searches the station directory.
type StationService interface {
	// Search parses raw ("tag:" prefix selects tag search) and returns the
	// matching stations ordered by votes.
	Search(ctx context.Context, raw string) ([]models.Station, error)
	// DirectoryURL returns the directory endpoint in use.
	DirectoryURL() string
}

// PlaybackService starts and stops station playback.
type PlaybackService interface {
	// Play registers a click for station (best effort), records it in the
	// history (best effort) and starts a new playback session.
	// A station without a usable URL is passed through so the player reports
	// [player.ErrInvalidInput]. Returns [ErrPlaySuperseded] when a later Play,
	// Stop or Close was issued while the side effects were running.
	Play(ctx context.Context, station models.Station) error
	// Stop ends playback. Stopping while idle is a no-op.
	Stop() error
	// Close ends playback and releases the controller.
	Close() error
	// State reports the playback state.
	State() player.State
}

// LibraryService manages the local favorites and play history.
type LibraryService interface {
	// ToggleFavorite adds station to the favorites or removes it when it is
	// already there. Reports whether the station is a favorite afterwards.
	ToggleFavorite(ctx context.Context, station models.Station) (bool, error)
	// ListFavorites returns favorites, newest first.
	ListFavorites(ctx context.Context) ([]models.Favorite, error)
	// RecentHistory returns at most limit plays, newest first.
	RecentHistory(ctx context.Context, limit int) ([]models.HistoryEntry, error)
	// ClearHistory removes every history entry.
	ClearHistory(ctx context.Context) error
}
