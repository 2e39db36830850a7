package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/clio/internal/logger"
	"github.com/MKhiriev/clio/models"
)

type historyRepository struct {
	db     *DB
	now    func() time.Time
	logger *logger.Logger
}

// NewHistoryRepository returns the sqlite implementation of
// [HistoryRepository].
func NewHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	return &historyRepository{db: db, now: time.Now, logger: logger}
}

func (h *historyRepository) RecordPlay(ctx context.Context, station models.Station) error {
	query, args, err := buildInsertHistoryQuery(station, h.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = h.db.ExecContext(ctx, query, args...); err != nil {
		h.logger.Err(err).
			Str("func", "historyRepository.RecordPlay").
			Str("station_uuid", station.StationUUID).
			Msg("failed to record play")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (h *historyRepository) RecentHistory(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	query, args, err := buildSelectHistoryQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := h.db.QueryContext(ctx, query, args...)
	if err != nil {
		h.logger.Err(err).Str("func", "historyRepository.RecentHistory").Msg("failed to query history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.HistoryEntry, 0)
	for rows.Next() {
		var e models.HistoryEntry
		if scanErr := rows.Scan(&e.ID, &e.StationUUID, &e.Name, &e.StreamURL, &e.PlayedAt); scanErr != nil {
			h.logger.Err(scanErr).Str("func", "historyRepository.RecentHistory").Msg("failed to scan history row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		entries = append(entries, e)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

func (h *historyRepository) ClearHistory(ctx context.Context) error {
	query, args, err := buildClearHistoryQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = h.db.ExecContext(ctx, query, args...); err != nil {
		h.logger.Err(err).Str("func", "historyRepository.ClearHistory").Msg("failed to clear history")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
