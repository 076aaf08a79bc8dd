package gorm

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type getDatabaseFunc func(ctx context.Context) (*gorm.DB, error)

func createGetDatabase(db *gorm.DB, models ...any) getDatabaseFunc {
	var (
		migrateOnce sync.Once
		migrateErr  error
	)

	return func(ctx context.Context) (*gorm.DB, error) {
		migrateOnce.Do(func() {
			if err := db.AutoMigrate(models...); err != nil {
				migrateErr = errors.WithStack(err)
				return
			}
		})
		if migrateErr != nil {
			return nil, errors.WithStack(migrateErr)
		}

		return db.WithContext(ctx), nil
	}
}

const (
	initialRetryBackoff = 500 * time.Millisecond
	maxRetries          = 10
)

// withRetry runs fn in a transaction, retrying it with an exponential backoff
// while sqlite reports one of the given error codes.
func withRetry(ctx context.Context, getDatabase getDatabaseFunc, fn func(ctx context.Context, db *gorm.DB) error, codes ...sqlite3.ErrorCode) error {
	db, err := getDatabase(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	backoff := initialRetryBackoff
	retries := 0

	for {
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := fn(ctx, tx); err != nil {
				return errors.WithStack(err)
			}

			return nil
		})
		if err == nil {
			return nil
		}

		if retries >= maxRetries {
			return errors.WithStack(err)
		}

		var sqliteErr *sqlite3.Error
		if !errors.As(err, &sqliteErr) || !slices.Contains(codes, sqliteErr.Code()) {
			return errors.WithStack(err)
		}

		slog.DebugContext(ctx, "transaction failed, will retry", slog.Int("retries", retries), slog.Duration("backoff", backoff), slog.Any("error", errors.WithStack(err)))

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(backoff):
		}

		retries++
		backoff *= 2
	}
}
