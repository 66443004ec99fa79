// Package store provides the persistence backends for the configuration
// tree: an in-process map, a JSON file, and a SQL key-value repository for
// SQLite and PostgreSQL. [NewKeyValueStore] selects between them based on
// the storage settings.
package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-reef-monitor/internal/config"
	"github.com/MKhiriev/go-reef-monitor/internal/logger"
)

// NewKeyValueStore builds the [config.KeyValueStore] selected by
// settings.Driver. SQL-backed drivers get their schema migrated before the
// repository is returned.
func NewKeyValueStore(ctx context.Context, settings config.StorageSettings, log *logger.Logger) (config.KeyValueStore, error) {
	switch settings.Driver {
	case config.DriverMemory:
		return NewMemoryStorage(), nil

	case config.DriverFile:
		return NewFileStorage(settings.Path, log)

	case config.DriverSQLite:
		db, err := NewConnectSQLite(ctx, settings, log)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(); err != nil {
			return nil, fmt.Errorf("error running migrations: %w", err)
		}
		return NewKeyValueRepository(db, log), nil

	case config.DriverPostgres:
		db, err := NewConnectPostgres(ctx, settings, log)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(); err != nil {
			return nil, fmt.Errorf("error running migrations: %w", err)
		}
		return NewKeyValueRepository(db, log), nil

	default:
		return nil, fmt.Errorf("%w: %s", config.ErrUnknownStorageDriver, settings.Driver)
	}
}
