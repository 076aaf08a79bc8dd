package port

import (
	"context"

	"github.com/bornholm/blog/internal/core/model"
)

type ArticleStore interface {
	CountArticles(ctx context.Context) (int64, error)
	QueryArticles(ctx context.Context, opts QueryArticlesOptions) ([]model.PersistedArticle, error)

	// SearchArticles returns the articles whose title or content contains
	// the given term, ignoring case. An empty term matches every article.
	SearchArticles(ctx context.Context, term string) ([]model.PersistedArticle, error)

	GetArticleByID(ctx context.Context, id model.ArticleID) (model.PersistedArticle, error)
	CreateArticle(ctx context.Context, article model.Article) (model.PersistedArticle, error)
	UpdateArticle(ctx context.Context, id model.ArticleID, updates ArticleUpdates) (model.PersistedArticle, error)

	// DeleteArticle removes the article and its comments.
	DeleteArticle(ctx context.Context, id model.ArticleID) error

	QueryArticleComments(ctx context.Context, id model.ArticleID) ([]model.Comment, error)
	CreateComment(ctx context.Context, id model.ArticleID, author string, content string) (model.Comment, error)
}

type QueryArticlesOptions struct {
	Page  *int
	Limit *int
}

type ArticleUpdates struct {
	Title   *string
	Content *string
}
