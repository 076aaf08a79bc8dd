package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/blog/internal/config"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/ncruces/go-sqlite3/embed"
)

var getGormDatabaseFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch driver := conf.Storage.Database.Driver; driver {
	case config.DriverSQLite:
		dialector = gormlite.Open(conf.Storage.Database.DSN)
	case config.DriverPostgres:
		dialector = postgres.Open(conf.Storage.Database.DSN)
	default:
		return nil, errors.Errorf("unsupported database driver '%s'", driver)
	}

	var logLevel logger.LogLevel
	switch conf.Logger.Level {
	case slog.LevelError:
		logLevel = logger.Error
	case slog.LevelWarn:
		logLevel = logger.Warn
	case slog.LevelInfo:
		logLevel = logger.Info
	default:
		logLevel = logger.Error
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if conf.Logger.Level == slog.LevelDebug {
		db = db.Debug()
	}

	if conf.Storage.Database.Driver != config.DriverSQLite {
		return db, nil
	}

	internalDB, err := db.DB()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	internalDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA journal_mode=wal; PRAGMA foreign_keys=on; PRAGMA busy_timeout=5000").Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return db, nil
})
