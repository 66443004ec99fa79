package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-reef-monitor/internal/config"
)

// MemoryStorage is a [config.KeyValueStore] backed by an in-process map.
// Values do not survive a restart; it serves tests and throwaway runs.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

// Get returns the value stored under key, or [config.ErrKeyNotFound] if the
// key has never been set.
func (s *MemoryStorage) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", config.ErrKeyNotFound
	}

	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *MemoryStorage) Set(_ context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value

	return nil
}
