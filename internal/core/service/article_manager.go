package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bornholm/blog/internal/core/model"
	"github.com/bornholm/blog/internal/core/port"
	"github.com/bornholm/blog/internal/metrics"
	"github.com/bornholm/blog/internal/validation"
	"github.com/pkg/errors"
)

// ArticleInput holds the submitted article fields.
type ArticleInput struct {
	Title   string `form:"title" validate:"required,max=128"`
	Content string `form:"content" validate:"required"`
}

// MaxTitleLength is the "max" rule of ArticleInput.Title.
var MaxTitleLength = validation.MaxLength(ArticleInput{}, "Title")

// Normalize strips the surrounding whitespaces of every field.
func (i ArticleInput) Normalize() ArticleInput {
	return ArticleInput{
		Title:   strings.TrimSpace(i.Title),
		Content: strings.TrimSpace(i.Content),
	}
}

type CommentInput struct {
	Author  string `form:"author" validate:"max=64"`
	Content string `form:"content" validate:"required"`
}

type ArticleEntry struct {
	Article  model.PersistedArticle
	Comments []model.Comment
}

type ArticleManager struct {
	ArticleStore port.ArticleStore

	validator *validation.Validator
}

// ListArticles returns every article with its comments.
func (m *ArticleManager) ListArticles(ctx context.Context) ([]*ArticleEntry, error) {
	articles, err := m.ArticleStore.QueryArticles(ctx, port.QueryArticlesOptions{})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	entries := make([]*ArticleEntry, 0, len(articles))
	for _, a := range articles {
		comments, err := m.ArticleStore.QueryArticleComments(ctx, a.ID())
		if err != nil {
			return nil, errors.WithStack(err)
		}

		entries = append(entries, &ArticleEntry{
			Article:  a,
			Comments: comments,
		})
	}

	return entries, nil
}

// GetArticle returns the article and its comments or port.ErrNotFound.
func (m *ArticleManager) GetArticle(ctx context.Context, id model.ArticleID) (*ArticleEntry, error) {
	article, err := m.ArticleStore.GetArticleByID(ctx, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	comments, err := m.ArticleStore.QueryArticleComments(ctx, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &ArticleEntry{
		Article:  article,
		Comments: comments,
	}, nil
}

func (m *ArticleManager) CreateArticle(ctx context.Context, input ArticleInput) (model.PersistedArticle, error) {
	input = input.Normalize()

	if err := m.validator.Validate(input); err != nil {
		metrics.ArticleValidationFailures.WithLabelValues(metrics.OperationCreate).Inc()
		return nil, errors.WithStack(err)
	}

	article, err := m.ArticleStore.CreateArticle(ctx, model.NewArticle(input.Title, input.Content))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	metrics.ArticleMutations.WithLabelValues(metrics.OperationCreate).Inc()

	slog.InfoContext(ctx, "article created", slog.String("article_id", article.ID().String()))

	return article, nil
}

func (m *ArticleManager) UpdateArticle(ctx context.Context, id model.ArticleID, input ArticleInput) (model.PersistedArticle, error) {
	input = input.Normalize()

	if err := m.validator.Validate(input); err != nil {
		metrics.ArticleValidationFailures.WithLabelValues(metrics.OperationUpdate).Inc()
		return nil, errors.WithStack(err)
	}

	article, err := m.ArticleStore.UpdateArticle(ctx, id, port.ArticleUpdates{
		Title:   &input.Title,
		Content: &input.Content,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	metrics.ArticleMutations.WithLabelValues(metrics.OperationUpdate).Inc()

	slog.InfoContext(ctx, "article updated", slog.String("article_id", id.String()))

	return article, nil
}

func (m *ArticleManager) DeleteArticle(ctx context.Context, id model.ArticleID) error {
	if err := m.ArticleStore.DeleteArticle(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	metrics.ArticleMutations.WithLabelValues(metrics.OperationDelete).Inc()

	slog.InfoContext(ctx, "article deleted", slog.String("article_id", id.String()))

	return nil
}

func (m *ArticleManager) SearchArticles(ctx context.Context, term string) ([]model.PersistedArticle, error) {
	metrics.TotalSearchRequests.Inc()

	articles, err := m.ArticleStore.SearchArticles(ctx, term)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return articles, nil
}

func (m *ArticleManager) AddComment(ctx context.Context, id model.ArticleID, input CommentInput) (model.Comment, error) {
	input.Author = strings.TrimSpace(input.Author)
	input.Content = strings.TrimSpace(input.Content)

	if err := m.validator.Validate(input); err != nil {
		return nil, errors.WithStack(err)
	}

	comment, err := m.ArticleStore.CreateComment(ctx, id, input.Author, input.Content)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return comment, nil
}

func NewArticleManager(store port.ArticleStore) *ArticleManager {
	return &ArticleManager{
		ArticleStore: store,
		validator:    validation.New(),
	}
}
