package gorm

import (
	"time"

	"github.com/bornholm/blog/internal/core/model"
)

type Article struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Title   string `gorm:"size:128;not null"`
	Content string `gorm:"not null"`

	Comments []*Comment `gorm:"constraint:OnDelete:CASCADE"`
}

type wrappedArticle struct {
	a *Article
}

// Content implements model.PersistedArticle.
func (w *wrappedArticle) Content() string {
	return w.a.Content
}

// CreatedAt implements model.PersistedArticle.
func (w *wrappedArticle) CreatedAt() time.Time {
	return w.a.CreatedAt
}

// ID implements model.PersistedArticle.
func (w *wrappedArticle) ID() model.ArticleID {
	return model.ArticleID(w.a.ID)
}

// Title implements model.PersistedArticle.
func (w *wrappedArticle) Title() string {
	return w.a.Title
}

// UpdatedAt implements model.PersistedArticle.
func (w *wrappedArticle) UpdatedAt() time.Time {
	return w.a.UpdatedAt
}

var _ model.PersistedArticle = &wrappedArticle{}

func fromArticle(a model.Article) *Article {
	return &Article{
		ID:      int64(a.ID()),
		Title:   a.Title(),
		Content: a.Content(),
	}
}

func wrapArticles(articles []*Article) []model.PersistedArticle {
	wrapped := make([]model.PersistedArticle, 0, len(articles))
	for _, a := range articles {
		wrapped = append(wrapped, &wrappedArticle{a})
	}
	return wrapped
}
