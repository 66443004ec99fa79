package config

//go:generate mockgen -source=kv.go -destination=../mock/key_value_store_mock.go -package=mock

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by [KeyValueStore.Get] when the requested key
// has never been written. The [Store] treats it as "no persisted overrides"
// rather than a failure.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is the persistence collaborator of the configuration
// [Store]. The store reads and writes exactly one key holding the
// serialized configuration tree; the interface stays generic so other
// dashboard state (calibration data, alert preferences) can share the
// backing storage.
//
// Implementations live in internal/store and must be safe for concurrent
// use.
type KeyValueStore interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value string) error
}
