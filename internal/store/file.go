// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-reef-monitor/internal/config"
	"github.com/MKhiriev/go-reef-monitor/internal/logger"
)

// FileStorage is a [config.KeyValueStore] persisted as a single JSON object
// on the local filesystem. Every write rewrites the whole file, which keeps
// the format trivially inspectable and editable by hand.
type FileStorage struct {
	mu     sync.Mutex
	path   string
	values map[string]string
	logger *logger.Logger
}

// NewFileStorage opens the storage file at path and loads its contents.
// A missing file yields an empty storage; content that does not decode as a
// JSON object of string pairs is reported as [ErrCorruptStorageFile].
func NewFileStorage(path string, log *logger.Logger) (*FileStorage, error) {
	storage := &FileStorage{
		path:   path,
		values: make(map[string]string),
		logger: log,
	}

	if err := storage.load(); err != nil {
		log.Err(err).Str("func", "NewFileStorage").Str("path", path).Msg("error loading storage file")
		return nil, err
	}
	log.Debug().Str("func", "NewFileStorage").Str("path", path).Int("keys", len(storage.values)).Msg("storage file loaded")

	return storage, nil
}

// Get returns the value stored under key, or [config.ErrKeyNotFound] if the
// key is absent.
func (s *FileStorage) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.values[key]
	if !ok {
		return "", config.ErrKeyNotFound
	}

	return value, nil
}

// Set stores value under key and rewrites the backing file. On a write
// failure the in-memory state is rolled back so it keeps matching the disk.
func (s *FileStorage) Set(_ context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.values[key]
	s.values[key] = value

	if err := s.save(); err != nil {
		if existed {
			s.values[key] = previous
		} else {
			delete(s.values, key)
		}
		return err
	}

	return nil
}

// load reads the storage file into memory. A missing or empty file is not an
// error.
func (s *FileStorage) load() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error reading storage file: %w", err)
	}

	if len(raw) == 0 {
		return nil
	}

	values := make(map[string]string)
	if err := json.Unmarshal(raw, &values); err != nil {
		return fmt.Errorf("%w: %s", ErrCorruptStorageFile, err)
	}
	s.values = values

	return nil
}

func (s *FileStorage) save() error {
	raw, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding storage file: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating storage directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("error writing storage file: %w", err)
	}

	return nil
}
