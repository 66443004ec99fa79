package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-reef-monitor/internal/config"
	"github.com/MKhiriev/go-reef-monitor/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/sethvargo/go-retry"
)

// configKVTable is the table holding one row per persisted configuration key.
const configKVTable = "config_kv"

const (
	saveRetryAttempts = 3
	saveRetryDelay    = 200 * time.Millisecond
)

// kvRepository is the SQL-backed implementation of [config.KeyValueStore].
// It stores opaque string values in the "config_kv" table, one row per key,
// and works against both PostgreSQL and SQLite through dialect-aware queries
// built with squirrel.
//
// Operations that fail with a transient driver error (connection loss,
// deadlock rollback) are retried a few times with a constant backoff; the
// decision is delegated to the [ErrorClassificator] attached to the [DB].
type kvRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewKeyValueRepository constructs a [config.KeyValueStore] backed by the
// provided database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewKeyValueRepository(db *DB, logger *logger.Logger) config.KeyValueStore {
	logger.Debug().Msg("creating key-value repository")
	return &kvRepository{
		db:     db,
		logger: logger,
	}
}

// Get returns the value stored under key.
//
// Error handling:
//   - No matching row → [config.ErrKeyNotFound].
//   - Query execution failure → wrapped as [ErrExecutingQuery].
//   - Scan failure → wrapped as [ErrScanningRow].
func (r *kvRepository) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("value").
		From(configKVTable).
		Where(sq.Eq{"key": key}).
		PlaceholderFormat(r.db.placeholder()).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*kvRepository.Get").Msg("error building query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = retry.Do(ctx, r.backoff(), func(ctx context.Context) error {
		row := r.db.QueryRowContext(ctx, query, args...)
		if err := row.Err(); err != nil {
			return r.retryable(fmt.Errorf("%w: %w", ErrExecutingQuery, err))
		}

		if err := row.Scan(&value); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return config.ErrKeyNotFound
			}
			return r.retryable(fmt.Errorf("%w: %w", ErrScanningRow, err))
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, config.ErrKeyNotFound) {
			return "", config.ErrKeyNotFound
		}
		log.Err(err).Str("func", "*kvRepository.Get").Str("key", key).Msg("error loading value")
		return "", err
	}

	return value, nil
}

// Set stores value under key, inserting the row on first write and updating
// it in place afterwards.
//
// Error handling:
//   - Write reporting zero affected rows → [ErrValueNotSaved].
//   - Query execution failure → wrapped as [ErrExecutingQuery].
//   - Transient driver errors are retried before being returned.
func (r *kvRepository) Set(ctx context.Context, key string, value string) error {
	log := logger.FromContext(ctx)

	err := retry.Do(ctx, r.backoff(), func(ctx context.Context) error {
		if err := r.save(ctx, key, value); err != nil {
			return r.retryable(err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*kvRepository.Set").Str("key", key).Msg("error saving value")
		return err
	}

	return nil
}

// save dispatches to the dialect-specific upsert.
func (r *kvRepository) save(ctx context.Context, key string, value string) error {
	if r.db.dialect == DialectPostgres {
		return r.savePostgres(ctx, key, value)
	}

	return r.saveSQLite(ctx, key, value)
}

// savePostgres inserts the row and falls back to an UPDATE when PostgreSQL
// reports a unique_violation on the key.
func (r *kvRepository) savePostgres(ctx context.Context, key string, value string) error {
	query, args, err := sq.Insert(configKVTable).
		Columns("key", "value").
		Values(key, value).
		PlaceholderFormat(r.db.placeholder()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if err == nil {
		return nil
	}

	if postgresError(err) != pgerrcode.UniqueViolation {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	// the key already exists - update it in place
	return r.update(ctx, key, value)
}

// saveSQLite performs a single-statement upsert via ON CONFLICT.
func (r *kvRepository) saveSQLite(ctx context.Context, key string, value string) error {
	query, args, err := sq.Insert(configKVTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		PlaceholderFormat(r.db.placeholder()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return checkAffected(result)
}

func (r *kvRepository) update(ctx context.Context, key string, value string) error {
	query, args, err := sq.Update(configKVTable).
		Set("value", value).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"key": key}).
		PlaceholderFormat(r.db.placeholder()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return checkAffected(result)
}

// retryable marks err for another attempt when the classifier considers it
// transient. Without a classifier (SQLite) every error is final.
func (r *kvRepository) retryable(err error) error {
	if err == nil {
		return nil
	}
	if r.db.errorClassificator != nil && r.db.errorClassificator.Classify(err) == Retryable {
		return retry.RetryableError(err)
	}

	return err
}

// backoff returns a fresh retry schedule; backoff values are stateful and
// must not be shared between calls.
func (r *kvRepository) backoff() retry.Backoff {
	return retry.WithMaxRetries(saveRetryAttempts, retry.NewConstant(saveRetryDelay))
}

func checkAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrValueNotSaved
	}

	return nil
}
