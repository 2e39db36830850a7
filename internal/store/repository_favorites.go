package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/clio/internal/logger"
	"github.com/MKhiriev/clio/models"
)

type favoriteRepository struct {
	db     *DB
	now    func() time.Time
	logger *logger.Logger
}

// NewFavoriteRepository returns the sqlite implementation of
// [FavoriteRepository].
func NewFavoriteRepository(db *DB, logger *logger.Logger) FavoriteRepository {
	return &favoriteRepository{db: db, now: time.Now, logger: logger}
}

func (f *favoriteRepository) AddFavorite(ctx context.Context, station models.Station) error {
	query, args, err := buildUpsertFavoriteQuery(station, f.now().UTC())
	if err != nil {
		f.logger.Err(err).Str("func", "favoriteRepository.AddFavorite").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = f.db.ExecContext(ctx, query, args...); err != nil {
		f.logger.Err(err).
			Str("func", "favoriteRepository.AddFavorite").
			Str("station_key", station.Key()).
			Msg("failed to save favorite")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (f *favoriteRepository) RemoveFavorite(ctx context.Context, key string) error {
	query, args, err := buildDeleteFavoriteQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := f.db.ExecContext(ctx, query, args...)
	if err != nil {
		f.logger.Err(err).
			Str("func", "favoriteRepository.RemoveFavorite").
			Str("station_key", key).
			Msg("failed to delete favorite")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrFavoriteNotFound
	}

	return nil
}

func (f *favoriteRepository) IsFavorite(ctx context.Context, key string) (bool, error) {
	query, args, err := buildFavoriteExistsQuery(key)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = f.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		f.logger.Err(err).
			Str("func", "favoriteRepository.IsFavorite").
			Str("station_key", key).
			Msg("failed to query favorite")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

func (f *favoriteRepository) ListFavorites(ctx context.Context) ([]models.Favorite, error) {
	query, args, err := buildSelectFavoritesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := f.db.QueryContext(ctx, query, args...)
	if err != nil {
		f.logger.Err(err).Str("func", "favoriteRepository.ListFavorites").Msg("failed to query favorites")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	favorites := make([]models.Favorite, 0)
	for rows.Next() {
		var (
			fav models.Favorite
			key string
		)
		scanErr := rows.Scan(
			&key,
			&fav.StationUUID,
			&fav.Name,
			&fav.Country,
			&fav.Codec,
			&fav.Bitrate,
			&fav.URL,
			&fav.URLResolved,
			&fav.Tags,
			&fav.Votes,
			&fav.CreatedAt,
		)
		if scanErr != nil {
			f.logger.Err(scanErr).Str("func", "favoriteRepository.ListFavorites").Msg("failed to scan favorite row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		favorites = append(favorites, fav)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		f.logger.Err(rowsErr).Str("func", "favoriteRepository.ListFavorites").Msg("error iterating favorite rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return favorites, nil
}
