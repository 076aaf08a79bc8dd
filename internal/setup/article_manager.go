package setup

import (
	"context"

	"github.com/bornholm/blog/internal/config"
	"github.com/bornholm/blog/internal/core/service"
	"github.com/pkg/errors"
)

var getArticleManagerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.ArticleManager, error) {
	store, err := getArticleStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create article store from config")
	}

	return service.NewArticleManager(store), nil
})

// NewArticleManagerFromConfig returns the shared article manager.
func NewArticleManagerFromConfig(ctx context.Context, conf *config.Config) (*service.ArticleManager, error) {
	manager, err := getArticleManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return manager, nil
}
