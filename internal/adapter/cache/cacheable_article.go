package cache

import (
	"github.com/bornholm/blog/internal/core/model"
)

type CacheableArticle struct {
	model.PersistedArticle
}

// CacheKeys implements [Cacheable].
func (a *CacheableArticle) CacheKeys() []string {
	return []string{
		getArticleCacheKey(a.ID()),
	}
}

func NewCacheableArticle(article model.PersistedArticle) *CacheableArticle {
	return &CacheableArticle{article}
}

var (
	_ model.PersistedArticle = &CacheableArticle{}
	_ Cacheable              = &CacheableArticle{}
)

func getArticleCacheKey(id model.ArticleID) string {
	return "article|" + id.String()
}
