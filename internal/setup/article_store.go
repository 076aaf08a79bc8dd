package setup

import (
	"context"

	"github.com/bornholm/blog/internal/adapter/cache"
	gormAdapter "github.com/bornholm/blog/internal/adapter/gorm"
	"github.com/bornholm/blog/internal/config"
	"github.com/bornholm/blog/internal/core/port"
	"github.com/pkg/errors"
)

var getArticleStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.ArticleStore, error) {
	db, err := getGormDatabaseFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create database from config")
	}

	var store port.ArticleStore = gormAdapter.NewArticleStore(db)

	if conf.Cache.Enabled {
		store = cache.NewArticleStore(store, conf.Cache.Size, conf.Cache.TTL)
	}

	return store, nil
})
