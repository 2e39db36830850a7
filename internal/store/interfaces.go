// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/clio/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// FavoriteRepository persists bookmarked stations.
type FavoriteRepository interface {
	// AddFavorite stores station, replacing an existing favorite with the
	// same key.
	AddFavorite(ctx context.Context, station models.Station) error
	// RemoveFavorite deletes the favorite with the given station key.
	// Returns [ErrFavoriteNotFound] when there is none.
	RemoveFavorite(ctx context.Context, key string) error
	// IsFavorite reports whether a favorite with the given key exists.
	IsFavorite(ctx context.Context, key string) (bool, error)
	// ListFavorites returns all favorites, newest first.
	ListFavorites(ctx context.Context) ([]models.Favorite, error)
}

// HistoryRepository persists play requests.
type HistoryRepository interface {
	// RecordPlay appends station to the play history.
	RecordPlay(ctx context.Context, station models.Station) error
	// RecentHistory returns at most limit entries, newest first.
	RecentHistory(ctx context.Context, limit int) ([]models.HistoryEntry, error)
	// ClearHistory removes every entry.
	ClearHistory(ctx context.Context) error
}
