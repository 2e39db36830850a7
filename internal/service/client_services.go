package service

import (
	"fmt"

	"github.com/MKhiriev/clio/internal/adapter"
	"github.com/MKhiriev/clio/internal/config"
	"github.com/MKhiriev/clio/internal/logger"
	"github.com/MKhiriev/clio/internal/store"
)

// ClientServices groups the services the terminal UI talks to.
type ClientServices struct {
	Stations StationService
	Playback PlaybackService
	Library  LibraryService
}

// NewClientServices wires the client services. All dependencies are
// required.
func NewClientServices(storages *store.ClientStorages, directory adapter.DirectoryAdapter, p Player, cfg config.ClientDirectory, logger *logger.Logger) (*ClientServices, error) {
	switch {
	case storages == nil || storages.Favorites == nil || storages.History == nil:
		return nil, fmt.Errorf("%w: storages", ErrMissingResource)
	case directory == nil:
		return nil, fmt.Errorf("%w: directory adapter", ErrMissingResource)
	case p == nil:
		return nil, fmt.Errorf("%w: player", ErrMissingResource)
	}

	return &ClientServices{
		Stations: NewStationService(directory, cfg.SearchLimit, logger),
		Playback: NewPlaybackService(directory, storages.History, p, logger),
		Library:  NewLibraryService(storages.Favorites, storages.History, logger),
	}, nil
}
