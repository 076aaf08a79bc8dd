package gorm

import (
	"time"

	"github.com/bornholm/blog/internal/core/model"
)

type Comment struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time
	UpdatedAt time.Time

	ArticleID int64 `gorm:"index;not null"`
	Author    string
	Content   string `gorm:"not null"`
}

type wrappedComment struct {
	c *Comment
}

// ArticleID implements model.Comment.
func (w *wrappedComment) ArticleID() model.ArticleID {
	return model.ArticleID(w.c.ArticleID)
}

// Author implements model.Comment.
func (w *wrappedComment) Author() string {
	return w.c.Author
}

// Content implements model.Comment.
func (w *wrappedComment) Content() string {
	return w.c.Content
}

// CreatedAt implements model.Comment.
func (w *wrappedComment) CreatedAt() time.Time {
	return w.c.CreatedAt
}

// ID implements model.Comment.
func (w *wrappedComment) ID() model.CommentID {
	return model.CommentID(w.c.ID)
}

// UpdatedAt implements model.Comment.
func (w *wrappedComment) UpdatedAt() time.Time {
	return w.c.UpdatedAt
}

var _ model.Comment = &wrappedComment{}
