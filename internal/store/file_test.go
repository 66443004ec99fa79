// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-reef-monitor/internal/config"
	"github.com/MKhiriev/go-reef-monitor/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestFileStorage(t *testing.T) (*FileStorage, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "reefmon_config.json")
	storage, err := NewFileStorage(path, logger.NewLogger("test"))
	require.NoError(t, err)

	return storage, path
}

// ─────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────

func TestFileStorage_MissingFileStartsEmpty(t *testing.T) {
	storage, path := newTestFileStorage(t)

	_, err := storage.Get(context.Background(), "reefmon_systemConfig")
	require.ErrorIs(t, err, config.ErrKeyNotFound)

	// the file is only created on the first write
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileStorage_SetThenGet(t *testing.T) {
	storage, _ := newTestFileStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Set(ctx, "reefmon_systemConfig", `{"features":{"enableExport":true}}`))

	got, err := storage.Get(ctx, "reefmon_systemConfig")
	require.NoError(t, err)
	assert.Equal(t, `{"features":{"enableExport":true}}`, got)
}

func TestFileStorage_SurvivesReopen(t *testing.T) {
	storage, path := newTestFileStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Set(ctx, "reefmon_systemConfig", `{"ui":{"theme":"light"}}`))
	require.NoError(t, storage.Set(ctx, "reefmon_calibration", `{"pump-1":1.04}`))

	reopened, err := NewFileStorage(path, logger.NewLogger("test"))
	require.NoError(t, err)

	got, err := reopened.Get(ctx, "reefmon_systemConfig")
	require.NoError(t, err)
	assert.Equal(t, `{"ui":{"theme":"light"}}`, got)

	got, err = reopened.Get(ctx, "reefmon_calibration")
	require.NoError(t, err)
	assert.Equal(t, `{"pump-1":1.04}`, got)
}

func TestFileStorage_EmptyFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reefmon_config.json")
	require.NoError(t, os.WriteFile(path, []byte{}, 0o600))

	storage, err := NewFileStorage(path, logger.NewLogger("test"))
	require.NoError(t, err)

	_, err = storage.Get(context.Background(), "reefmon_systemConfig")
	require.ErrorIs(t, err, config.ErrKeyNotFound)
}

func TestFileStorage_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reefmon_config.json")
	require.NoError(t, os.WriteFile(path, []byte("{{{not json"), 0o600))

	_, err := NewFileStorage(path, logger.NewLogger("test"))
	require.ErrorIs(t, err, ErrCorruptStorageFile)
}

func TestFileStorage_NonObjectFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reefmon_config.json")
	require.NoError(t, os.WriteFile(path, []byte(`[1, 2, 3]`), 0o600))

	_, err := NewFileStorage(path, logger.NewLogger("test"))
	require.ErrorIs(t, err, ErrCorruptStorageFile)
}

func TestFileStorage_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "nested", "reefmon_config.json")

	storage, err := NewFileStorage(path, logger.NewLogger("test"))
	require.NoError(t, err)

	require.NoError(t, storage.Set(context.Background(), "reefmon_alerts", `{"muted":true}`))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
