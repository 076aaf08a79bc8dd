// Package gormtest provides in-memory databases for tests.
package gormtest

import (
	"testing"

	gormAdapter "github.com/bornholm/blog/internal/adapter/gorm"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/ncruces/go-sqlite3/embed"
)

// NewDatabase opens a private in-memory sqlite database closed at the end of the test.
func NewDatabase(t testing.TB) (*gorm.DB, error) {
	db, err := gorm.Open(gormlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	internalDB, err := db.DB()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Every connection to ":memory:" opens its own database
	internalDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		if err := internalDB.Close(); err != nil {
			t.Logf("could not close database: %+v", errors.WithStack(err))
		}
	})

	if err := db.Exec("PRAGMA foreign_keys=on").Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return db, nil
}

func NewArticleStore(t testing.TB) (*gormAdapter.ArticleStore, error) {
	db, err := NewDatabase(t)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return gormAdapter.NewArticleStore(db), nil
}
