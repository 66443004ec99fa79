// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-reef-monitor/internal/config"
	"github.com/MKhiriev/go-reef-monitor/internal/logger"
	"github.com/MKhiriev/go-reef-monitor/internal/utils"
)

// stopFlushTimeout bounds the final flush performed by [ConfigFlusher.Stop];
// the run context is already cancelled at that point.
const stopFlushTimeout = 5 * time.Second

// ConfigFlusher persists the configuration tree in the background. Updates
// arriving through the store's update hook are debounced into a single
// write, and a periodic safety flush catches anything the debounce missed.
// Both paths write only when the revision moved since the last successful
// flush, so an idle tree costs nothing.
//
// Flush failures are logged and never fatal; the in-memory tree stays
// authoritative.
type ConfigFlusher struct {
	store    *config.Store
	debounce *utils.Debouncer
	interval time.Duration
	logger   *logger.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	flushed string // revision written by the last successful flush
}

// NewConfigFlusher creates a ConfigFlusher driven by the given flush
// settings. Non-positive durations fall back to the compiled-in defaults.
// The flusher is idle until Start is called.
func NewConfigFlusher(store *config.Store, settings config.FlushSettings, log *logger.Logger) *ConfigFlusher {
	interval := settings.Interval
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	debounce := settings.Debounce
	if debounce <= 0 {
		debounce = 2 * time.Second
	}

	return &ConfigFlusher{
		store:    store,
		debounce: utils.NewDebouncer(debounce),
		interval: interval,
		logger:   log,
		flushed:  store.Revision(),
	}
}

// Start stops any previously running instance, registers the debounced
// update hook on the store, and launches the safety-flush goroutine. The
// goroutine exits when ctx is cancelled or Stop is called.
func (f *ConfigFlusher) Start(ctx context.Context) {
	f.Stop()

	f.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.wg.Add(1)
	f.mu.Unlock()

	f.store.SetUpdateHook(func() {
		f.debounce.Trigger(func() { f.flush(jobCtx) })
	})

	go func() {
		defer f.wg.Done()
		t := time.NewTicker(f.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				f.flush(jobCtx)
			}
		}
	}()
}

// Stop unregisters the update hook, cancels the background goroutine and
// blocks until it has exited, then performs one final flush so a pending
// debounced write is not lost. Safe to call when the flusher is not running
// (no-op in that case).
func (f *ConfigFlusher) Stop() {
	f.mu.Lock()
	cancel := f.cancel
	f.cancel = nil
	f.mu.Unlock()

	if cancel == nil {
		return
	}

	f.store.SetUpdateHook(nil)
	f.debounce.Stop()
	cancel()
	f.wg.Wait()

	ctx, cancelFlush := context.WithTimeout(context.Background(), stopFlushTimeout)
	defer cancelFlush()
	f.flush(ctx)
}

// Run implements [Worker]. It starts the flusher detached from any caller
// context; use Start directly when shutdown coordination is needed.
func (f *ConfigFlusher) Run() {
	f.Start(context.Background())
}

// flush writes the tree through the store unless the revision is still the
// one recorded by the last successful flush.
func (f *ConfigFlusher) flush(ctx context.Context) {
	revision := f.store.Revision()

	f.mu.Lock()
	unchanged := revision == f.flushed
	f.mu.Unlock()
	if unchanged {
		return
	}

	if err := f.store.Flush(ctx); err != nil {
		f.logger.Warn().Err(err).Msg("could not flush configuration")
		return
	}

	f.mu.Lock()
	f.flushed = revision
	f.mu.Unlock()

	f.logger.Debug().Str("revision", revision).Msg("configuration flushed")
}
