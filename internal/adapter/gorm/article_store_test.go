package gorm_test

import (
	"testing"

	"github.com/bornholm/blog/internal/adapter/gorm/gormtest"
	"github.com/bornholm/blog/internal/core/port"
	"github.com/bornholm/blog/internal/core/port/testsuite"
	"github.com/pkg/errors"
)

func TestArticleStore(t *testing.T) {
	testsuite.TestArticleStore(t, func(t *testing.T) (port.ArticleStore, error) {
		store, err := gormtest.NewArticleStore(t)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return store, nil
	})
}
