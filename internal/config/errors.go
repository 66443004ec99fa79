package config

import "errors"

// Validation errors returned by [Settings.validate] when the merged
// settings are incomplete or inconsistent.
var (
	// ErrUnknownStorageDriver indicates a storage driver outside the
	// supported set (memory, file, sqlite, postgres).
	ErrUnknownStorageDriver = errors.New("unknown storage driver")
	// ErrMissingStoragePath indicates that the file or sqlite driver was
	// selected without a data file path.
	ErrMissingStoragePath = errors.New("storage path is required")
	// ErrMissingDatabaseDSN indicates that the postgres driver was
	// selected without a connection string.
	ErrMissingDatabaseDSN = errors.New("database DSN is required")
	// ErrInvalidEnvironment indicates an environment override that is
	// neither "development" nor "production".
	ErrInvalidEnvironment = errors.New("invalid environment")
	// ErrInvalidFlushSettings indicates a non-positive flush interval or
	// debounce.
	ErrInvalidFlushSettings = errors.New("invalid flush settings")
)
