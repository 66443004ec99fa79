package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-reef-monitor/internal/logger"
	"github.com/MKhiriev/go-reef-monitor/migrations"
)

// Dialect names accepted by [DB] and the goose migration runner.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// placeholder returns the squirrel placeholder format matching the dialect:
// $1-style for postgres, ?-style for sqlite.
func (db *DB) placeholder() sq.PlaceholderFormat {
	if db.dialect == DialectPostgres {
		return sq.Dollar
	}

	return sq.Question
}
