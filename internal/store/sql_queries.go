package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/clio/models"
)

const (
	favoritesTable = "favorites"
	historyTable   = "play_history"
)

var favoriteColumns = []string{
	"station_key",
	"station_uuid",
	"name",
	"country",
	"codec",
	"bitrate",
	"url",
	"url_resolved",
	"tags",
	"votes",
	"created_at",
}

var historyColumns = []string{
	"id",
	"station_uuid",
	"name",
	"stream_url",
	"played_at",
}

// sqlite uses ? placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildUpsertFavoriteQuery(station models.Station, createdAt time.Time) (string, []any, error) {
	return builder.
		Insert(favoritesTable).
		Options("OR REPLACE").
		Columns(favoriteColumns...).
		Values(
			station.Key(),
			station.StationUUID,
			station.Name,
			station.Country,
			station.Codec,
			station.Bitrate,
			station.URL,
			station.URLResolved,
			station.Tags,
			station.Votes,
			createdAt,
		).
		ToSql()
}

func buildDeleteFavoriteQuery(key string) (string, []any, error) {
	return builder.
		Delete(favoritesTable).
		Where(sq.Eq{"station_key": key}).
		ToSql()
}

func buildFavoriteExistsQuery(key string) (string, []any, error) {
	return builder.
		Select("COUNT(*)").
		From(favoritesTable).
		Where(sq.Eq{"station_key": key}).
		ToSql()
}

func buildSelectFavoritesQuery() (string, []any, error) {
	return builder.
		Select(favoriteColumns...).
		From(favoritesTable).
		OrderBy("created_at DESC", "name ASC").
		ToSql()
}

func buildInsertHistoryQuery(station models.Station, playedAt time.Time) (string, []any, error) {
	return builder.
		Insert(historyTable).
		Columns("station_uuid", "name", "stream_url", "played_at").
		Values(station.StationUUID, station.Name, station.StreamURL(), playedAt).
		ToSql()
}

func buildSelectHistoryQuery(limit int) (string, []any, error) {
	q := builder.
		Select(historyColumns...).
		From(historyTable).
		OrderBy("played_at DESC", "id DESC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	return q.ToSql()
}

func buildClearHistoryQuery() (string, []any, error) {
	return builder.Delete(historyTable).ToSql()
}
