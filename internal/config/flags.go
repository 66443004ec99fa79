package config

import (
	"flag"
	"time"
)

// ParseFlags parses all settings flags.
//
// Flags:
//
//	-driver storage driver (memory|file|sqlite|postgres)
//	-f storage file path (file and sqlite drivers)
//	-d database DSN (postgres driver)
//	-hostname hostname override for environment detection
//	-environment environment override (development|production)
//	-log-level minimum log level (debug|info|warn|error)
//	-flush-interval periodic flush interval (e.g., "5m")
//	-flush-debounce flush debounce after updates (e.g., "2s")
//	-c/-config json file path with settings
func ParseFlags() *Settings {
	var driver string
	var storagePath string
	var databaseDSN string
	var hostname string
	var environment string
	var logLevel string
	var flushInterval time.Duration
	var flushDebounce time.Duration
	var jsonConfigPath string

	flag.StringVar(&driver, "driver", "", "Storage driver (memory|file|sqlite|postgres)")
	flag.StringVar(&storagePath, "f", "", "Storage file path")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&hostname, "hostname", "", "Hostname override for environment detection")
	flag.StringVar(&environment, "environment", "", "Environment override (development|production)")
	flag.StringVar(&logLevel, "log-level", "", "Minimum log level (debug|info|warn|error)")
	flag.DurationVar(&flushInterval, "flush-interval", 0, "Periodic flush interval (e.g., 5m)")
	flag.DurationVar(&flushDebounce, "flush-debounce", 0, "Flush debounce after updates (e.g., 2s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON settings file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON settings file path (alias)")

	flag.Parse()

	return &Settings{
		App: AppSettings{
			Hostname:    hostname,
			Environment: environment,
			LogLevel:    logLevel,
		},
		Storage: StorageSettings{
			Driver: driver,
			Path:   storagePath,
			DSN:    databaseDSN,
		},
		Flush: FlushSettings{
			Interval: flushInterval,
			Debounce: flushDebounce,
		},
		JSONFilePath: jsonConfigPath,
	}
}
