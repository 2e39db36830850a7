package store

import (
	"database/sql"

	"github.com/MKhiriev/clio/internal/logger"
	"github.com/MKhiriev/clio/migrations"
)

// DB wraps the sqlite connection pool shared by all repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
