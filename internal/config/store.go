// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-reef-monitor/internal/logger"
	"github.com/MKhiriev/go-reef-monitor/internal/utils"
	"github.com/MKhiriev/go-reef-monitor/models"
)

// storageKeyPrefix namespaces every key the dashboard writes into the
// shared key-value store.
const storageKeyPrefix = "reefmon_"

// configStorageKey is the logical name the serialized configuration tree is
// persisted under.
const configStorageKey = "systemConfig"

// persistLogInterval caps how often repeated persistence failures are
// logged. The in-memory tree stays authoritative either way.
const persistLogInterval = 30 * time.Second

// storageKeyAliases maps verbose logical names to the shorter names earlier
// dashboard versions already persisted under. Names without an alias are
// used as-is.
var storageKeyAliases = map[string]string{
	"pumpCalibration": "calibration",
	"alertSettings":   "alerts",
}

// ThresholdMode selects which bounds [Store.Threshold] returns.
type ThresholdMode string

const (
	// ThresholdTarget returns the preferred band, substituting the absolute
	// bound on sides without a target. It is the default mode; any
	// unrecognized mode behaves like it.
	ThresholdTarget ThresholdMode = "target"

	// ThresholdRange returns the absolute alarm bounds.
	ThresholdRange ThresholdMode = "range"
)

// Store holds the live configuration of the dashboard: compiled-in defaults
// for the environment, overlaid once at construction with overrides
// persisted by a previous session, then mutated only through [Store.Update].
//
// The tree is kept in canonical JSON form (see [ConfigTree]) and guarded by
// a single RWMutex; all methods are safe for concurrent use.
type Store struct {
	mu         sync.RWMutex
	tree       ConfigTree
	revision   string
	updateHook func()

	kv  KeyValueStore
	env Environment
	log *logger.Logger

	persistLogLimiter *utils.Throttler
}

// NewStore builds the configuration store for the given environment and
// overlays any overrides found in kv. Persistence problems during the
// overlay never fail construction; the compiled-in defaults remain
// authoritative. The returned error only signals a broken compiled-in
// default tree.
func NewStore(ctx context.Context, kv KeyValueStore, env Environment, log *logger.Logger) (*Store, error) {
	tree, err := normalizeTree(defaultTree(env))
	if err != nil {
		return nil, fmt.Errorf("error building default configuration: %w", err)
	}

	s := &Store{
		tree:              tree,
		revision:          utils.NewRevision(),
		kv:                kv,
		env:               env,
		log:               log,
		persistLogLimiter: utils.NewThrottler(persistLogInterval),
	}
	s.loadPersistedOverrides(ctx)

	return s, nil
}

// loadPersistedOverrides merges the overrides a previous session persisted,
// if any. Absent key, storage failure, and malformed payload all leave the
// defaults in place; nothing is surfaced to the caller.
func (s *Store) loadPersistedOverrides(ctx context.Context) {
	raw, err := s.kv.Get(ctx, s.StorageKey(configStorageKey))
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			s.log.Warn().Err(err).Msg("could not read persisted configuration, using defaults")
		}
		return
	}

	overrides, err := utils.ParseJSONObject([]byte(raw))
	if err != nil {
		s.log.Warn().Err(err).Msg("persisted configuration is malformed, using defaults")
		return
	}

	s.mu.Lock()
	s.tree = deepMerge(s.tree, overrides)
	s.revision = utils.NewRevision()
	s.mu.Unlock()

	s.log.Debug().Msg("persisted configuration overrides applied")
}

// Config returns a deep, independent copy of the current configuration
// tree. Mutating the returned tree never affects the store or other copies.
func (s *Store) Config() ConfigTree {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return utils.CloneTree(s.tree)
}

// Environment returns the environment the store was built for.
func (s *Store) Environment() Environment {
	return s.env
}

// StorageKey returns the namespaced key under which logicalName is
// persisted: the fixed prefix plus the known short alias, or logicalName
// itself when no alias exists.
func (s *Store) StorageKey(logicalName string) string {
	if alias, ok := storageKeyAliases[logicalName]; ok {
		return storageKeyPrefix + alias
	}

	return storageKeyPrefix + logicalName
}

// FeatureEnabled reports whether the named feature flag is present and set
// to exactly true. Absent flags and non-boolean values count as disabled.
func (s *Store) FeatureEnabled(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	features, ok := s.tree["features"].(map[string]any)
	if !ok {
		return false
	}

	enabled, ok := features[name].(bool)
	return ok && enabled
}

// Threshold returns the bounds for the named water parameter, or nil when
// the parameter is unknown. ThresholdTarget (and any other mode value)
// yields the preferred band with per-side fallback to the absolute bounds;
// ThresholdRange yields the absolute bounds directly.
func (s *Store) Threshold(parameter string, mode ThresholdMode) *models.Range {
	s.mu.RLock()
	defer s.mu.RUnlock()

	section, ok := s.tree["thresholds"].(map[string]any)
	if !ok {
		return nil
	}

	raw, ok := section[parameter].(map[string]any)
	if !ok {
		return nil
	}

	var block models.ThresholdBlock
	if err := decodeSection(raw, &block); err != nil {
		s.log.Warn().Err(err).Str("parameter", parameter).Msg("threshold block is malformed")
		return nil
	}

	bounds := block.Target()
	if mode == ThresholdRange {
		bounds = block.Absolute()
	}

	return &bounds
}

// Update deep-merges override into the live tree and stamps a new revision.
// When persist is true the full resulting tree is also written to the
// key-value store; a storage failure there is logged (rate limited) and
// swallowed, so the in-memory state stays authoritative for the session.
//
// The only error condition is an override that cannot be brought into
// canonical JSON form; the tree is left untouched in that case.
func (s *Store) Update(ctx context.Context, override Override, persist bool) error {
	normalized, err := normalizeTree(override)
	if err != nil {
		return fmt.Errorf("error applying configuration update: %w", err)
	}

	s.mu.Lock()
	s.tree = deepMerge(s.tree, normalized)
	s.revision = utils.NewRevision()
	hook := s.updateHook
	s.mu.Unlock()

	if persist {
		if err := s.persist(ctx); err != nil && s.persistLogLimiter.Allow() {
			s.log.Warn().Err(err).Msg("could not persist configuration, keeping in-memory state")
		}
	}

	if hook != nil {
		hook()
	}

	return nil
}

// Flush writes the current tree to the key-value store. Unlike
// [Store.Update] it returns storage errors to the caller; the auto-flush
// worker turns them into logged diagnostics.
func (s *Store) Flush(ctx context.Context) error {
	return s.persist(ctx)
}

// Revision returns the stamp of the last applied update. A fresh stamp is
// issued at construction and after every Update, so collaborators can cheaply
// detect that the tree changed.
func (s *Store) Revision() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.revision
}

// SetUpdateHook registers fn to run after every successful Update. It is
// meant to be wired once at startup (the auto-flush worker uses it to
// schedule debounced writes); a later call replaces the previous hook.
func (s *Store) SetUpdateHook(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.updateHook = fn
}

func (s *Store) persist(ctx context.Context) error {
	s.mu.RLock()
	raw, err := json.Marshal(s.tree)
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("error serializing configuration: %w", err)
	}

	if err := s.kv.Set(ctx, s.StorageKey(configStorageKey), string(raw)); err != nil {
		return fmt.Errorf("error persisting configuration: %w", err)
	}

	return nil
}
