// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [Settings] satisfy all invariants
// before the process starts.
//
// Returns nil if the settings are valid, or one of the sentinel errors
// declared in errors.go otherwise.
func (s *Settings) validate() error {
	switch s.Storage.Driver {
	case DriverMemory:
	case DriverFile, DriverSQLite:
		if s.Storage.Path == "" {
			return ErrMissingStoragePath
		}
	case DriverPostgres:
		if s.Storage.DSN == "" {
			return ErrMissingDatabaseDSN
		}
	default:
		return ErrUnknownStorageDriver
	}

	if s.App.Environment != "" {
		env := Environment(s.App.Environment)
		if env != EnvDevelopment && env != EnvProduction {
			return ErrInvalidEnvironment
		}
	}

	if s.Flush.Interval <= 0 || s.Flush.Debounce <= 0 {
		return ErrInvalidFlushSettings
	}

	return nil
}
