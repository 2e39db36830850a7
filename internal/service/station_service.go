package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/clio/internal/adapter"
	"github.com/MKhiriev/clio/internal/logger"
	"github.com/MKhiriev/clio/models"
)

type stationService struct {
	directory adapter.DirectoryAdapter
	limit     int
	logger    *logger.Logger
}

// NewStationService returns a [StationService] that returns at most limit
// stations per search.
func NewStationService(directory adapter.DirectoryAdapter, limit int, logger *logger.Logger) StationService {
	return &stationService{directory: directory, limit: limit, logger: logger}
}

func (s *stationService) Search(ctx context.Context, raw string) ([]models.Station, error) {
	query := models.ParseSearchQuery(raw, s.limit)
	if query.Term == "" {
		return nil, adapter.ErrEmptyQuery
	}

	stations, err := s.directory.Search(ctx, query)
	if err != nil {
		s.logger.Err(err).
			Str("func", "stationService.Search").
			Str("term", query.Term).
			Bool("by_tag", query.ByTag).
			Msg("directory search failed")
		return nil, fmt.Errorf("search stations: %w", err)
	}

	s.logger.Debug().
		Str("func", "stationService.Search").
		Str("term", query.Term).
		Int("results", len(stations)).
		Msg("search done")
	return stations, nil
}

func (s *stationService) DirectoryURL() string {
	return s.directory.BaseURL()
}
