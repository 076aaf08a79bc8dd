package cache

import (
	"context"
	"sync"
	"time"

	"github.com/bornholm/blog/internal/core/model"
	"github.com/bornholm/blog/internal/core/port"
)

type ArticleStore struct {
	backend      port.ArticleStore
	articleCache *MultiIndexCache[*CacheableArticle]

	// version is bumped around every write. A read only populates the
	// cache if no write happened while it was querying the backend.
	versionMutex sync.Mutex
	version      uint64
}

// CountArticles implements [port.ArticleStore].
func (s *ArticleStore) CountArticles(ctx context.Context) (int64, error) {
	return s.backend.CountArticles(ctx)
}

// QueryArticles implements [port.ArticleStore].
func (s *ArticleStore) QueryArticles(ctx context.Context, opts port.QueryArticlesOptions) ([]model.PersistedArticle, error) {
	return s.backend.QueryArticles(ctx, opts)
}

// SearchArticles implements [port.ArticleStore].
func (s *ArticleStore) SearchArticles(ctx context.Context, term string) ([]model.PersistedArticle, error) {
	return s.backend.SearchArticles(ctx, term)
}

// GetArticleByID implements [port.ArticleStore].
func (s *ArticleStore) GetArticleByID(ctx context.Context, id model.ArticleID) (model.PersistedArticle, error) {
	if article, exists := s.articleCache.Get(getArticleCacheKey(id)); exists {
		return article, nil
	}

	version := s.currentVersion()

	article, err := s.backend.GetArticleByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.versionMutex.Lock()
	defer s.versionMutex.Unlock()

	if version == s.version {
		s.articleCache.Add(NewCacheableArticle(article))
	}

	return article, nil
}

// CreateArticle implements [port.ArticleStore].
func (s *ArticleStore) CreateArticle(ctx context.Context, article model.Article) (model.PersistedArticle, error) {
	return s.backend.CreateArticle(ctx, article)
}

// UpdateArticle implements [port.ArticleStore].
func (s *ArticleStore) UpdateArticle(ctx context.Context, id model.ArticleID, updates port.ArticleUpdates) (model.PersistedArticle, error) {
	s.invalidate(id)
	defer s.invalidate(id)

	return s.backend.UpdateArticle(ctx, id, updates)
}

// DeleteArticle implements [port.ArticleStore].
func (s *ArticleStore) DeleteArticle(ctx context.Context, id model.ArticleID) error {
	s.invalidate(id)
	defer s.invalidate(id)

	return s.backend.DeleteArticle(ctx, id)
}

// QueryArticleComments implements [port.ArticleStore].
func (s *ArticleStore) QueryArticleComments(ctx context.Context, id model.ArticleID) ([]model.Comment, error) {
	return s.backend.QueryArticleComments(ctx, id)
}

// CreateComment implements [port.ArticleStore].
func (s *ArticleStore) CreateComment(ctx context.Context, id model.ArticleID, author string, content string) (model.Comment, error) {
	return s.backend.CreateComment(ctx, id, author, content)
}

func (s *ArticleStore) currentVersion() uint64 {
	s.versionMutex.Lock()
	defer s.versionMutex.Unlock()

	return s.version
}

func (s *ArticleStore) invalidate(id model.ArticleID) {
	s.versionMutex.Lock()
	defer s.versionMutex.Unlock()

	s.version++
	s.articleCache.Remove(getArticleCacheKey(id))
}

func NewArticleStore(backend port.ArticleStore, size int, ttl time.Duration) *ArticleStore {
	return &ArticleStore{
		backend:      backend,
		articleCache: NewMultiIndexCache[*CacheableArticle](size, ttl),
	}
}

var _ port.ArticleStore = &ArticleStore{}
