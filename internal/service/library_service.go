package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/clio/internal/logger"
	"github.com/MKhiriev/clio/internal/store"
	"github.com/MKhiriev/clio/models"
)

type libraryService struct {
	favorites store.FavoriteRepository
	history   store.HistoryRepository
	logger    *logger.Logger
}

// NewLibraryService returns a [LibraryService] backed by the given
// repositories.
func NewLibraryService(favorites store.FavoriteRepository, history store.HistoryRepository, logger *logger.Logger) LibraryService {
	return &libraryService{favorites: favorites, history: history, logger: logger}
}

func (l *libraryService) ToggleFavorite(ctx context.Context, station models.Station) (bool, error) {
	key := station.Key()
	if key == "" {
		return false, ErrNoStationKey
	}

	exists, err := l.favorites.IsFavorite(ctx, key)
	if err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}

	if exists {
		if err = l.favorites.RemoveFavorite(ctx, key); err != nil {
			return true, fmt.Errorf("remove favorite: %w", err)
		}
		l.logger.Info().Str("func", "libraryService.ToggleFavorite").Str("station_key", key).Msg("favorite removed")
		return false, nil
	}

	if err = l.favorites.AddFavorite(ctx, station); err != nil {
		return false, fmt.Errorf("add favorite: %w", err)
	}
	l.logger.Info().Str("func", "libraryService.ToggleFavorite").Str("station_key", key).Msg("favorite added")
	return true, nil
}

func (l *libraryService) ListFavorites(ctx context.Context) ([]models.Favorite, error) {
	return l.favorites.ListFavorites(ctx)
}

func (l *libraryService) RecentHistory(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	return l.history.RecentHistory(ctx, limit)
}

func (l *libraryService) ClearHistory(ctx context.Context) error {
	return l.history.ClearHistory(ctx)
}
