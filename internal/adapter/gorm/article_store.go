package gorm

import (
	"context"
	"strings"

	"github.com/bornholm/blog/internal/core/model"
	"github.com/bornholm/blog/internal/core/port"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type ArticleStore struct {
	getDatabase getDatabaseFunc
}

// CountArticles implements port.ArticleStore.
func (s *ArticleStore) CountArticles(ctx context.Context) (int64, error) {
	var total int64

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Model(&Article{}).Count(&total).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return total, nil
}

// QueryArticles implements port.ArticleStore.
func (s *ArticleStore) QueryArticles(ctx context.Context, opts port.QueryArticlesOptions) ([]model.PersistedArticle, error) {
	var articles []*Article

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		query := db.Order("id asc")

		if opts.Limit != nil {
			page := 0
			if opts.Page != nil {
				page = *opts.Page
			}

			query = query.Limit(*opts.Limit).Offset(page * *opts.Limit)
		}

		if err := query.Find(&articles).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return wrapArticles(articles), nil
}

// SearchArticles implements port.ArticleStore.
func (s *ArticleStore) SearchArticles(ctx context.Context, term string) ([]model.PersistedArticle, error) {
	var articles []*Article

	pattern := "%" + escapeLike(term) + "%"

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		err := db.
			Where(`LOWER(title) LIKE LOWER(?) ESCAPE '\' OR LOWER(content) LIKE LOWER(?) ESCAPE '\'`, pattern, pattern).
			Order("id asc").
			Find(&articles).Error
		if err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return wrapArticles(articles), nil
}

// GetArticleByID implements port.ArticleStore.
func (s *ArticleStore) GetArticleByID(ctx context.Context, id model.ArticleID) (model.PersistedArticle, error) {
	var article Article

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&article, "id = ?", int64(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}

			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedArticle{&article}, nil
}

// CreateArticle implements port.ArticleStore.
func (s *ArticleStore) CreateArticle(ctx context.Context, a model.Article) (model.PersistedArticle, error) {
	article := fromArticle(a)
	article.ID = 0

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Create(article).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedArticle{article}, nil
}

// UpdateArticle implements port.ArticleStore.
func (s *ArticleStore) UpdateArticle(ctx context.Context, id model.ArticleID, updates port.ArticleUpdates) (model.PersistedArticle, error) {
	var article Article

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&article, "id = ?", int64(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}

			return errors.WithStack(err)
		}

		if updates.Title != nil {
			article.Title = *updates.Title
		}

		if updates.Content != nil {
			article.Content = *updates.Content
		}

		if err := db.Save(&article).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedArticle{&article}, nil
}

// DeleteArticle implements port.ArticleStore.
func (s *ArticleStore) DeleteArticle(ctx context.Context, id model.ArticleID) error {
	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		var article Article
		if err := db.First(&article, "id = ?", int64(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}

			return errors.WithStack(err)
		}

		if err := db.Where("article_id = ?", article.ID).Delete(&Comment{}).Error; err != nil {
			return errors.WithStack(err)
		}

		if err := db.Delete(&article).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// QueryArticleComments implements port.ArticleStore.
func (s *ArticleStore) QueryArticleComments(ctx context.Context, id model.ArticleID) ([]model.Comment, error) {
	var comments []*Comment

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Where("article_id = ?", int64(id)).Order("id asc").Find(&comments).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	wrapped := make([]model.Comment, 0, len(comments))
	for _, c := range comments {
		wrapped = append(wrapped, &wrappedComment{c})
	}

	return wrapped, nil
}

// CreateComment implements port.ArticleStore.
func (s *ArticleStore) CreateComment(ctx context.Context, id model.ArticleID, author string, content string) (model.Comment, error) {
	comment := &Comment{
		ArticleID: int64(id),
		Author:    author,
		Content:   content,
	}

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		var count int64
		if err := db.Model(&Article{}).Where("id = ?", int64(id)).Count(&count).Error; err != nil {
			return errors.WithStack(err)
		}

		if count == 0 {
			return errors.WithStack(port.ErrNotFound)
		}

		if err := db.Create(comment).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedComment{comment}, nil
}

func (s *ArticleStore) withRetry(ctx context.Context, fn func(ctx context.Context, db *gorm.DB) error, codes ...sqlite3.ErrorCode) error {
	return withRetry(ctx, s.getDatabase, fn, codes...)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

func NewArticleStore(db *gorm.DB) *ArticleStore {
	return &ArticleStore{
		getDatabase: createGetDatabase(db, &Article{}, &Comment{}),
	}
}

var _ port.ArticleStore = &ArticleStore{}
