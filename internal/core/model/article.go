package model

import (
	"strconv"
	"time"
)

type ArticleID int64

func (id ArticleID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func ParseArticleID(raw string) (ArticleID, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}

	return ArticleID(id), nil
}

type Article interface {
	WithID[ArticleID]

	Title() string
	Content() string
}

type PersistedArticle interface {
	Article
	WithLifecycle
}

type BaseArticle struct {
	title   string
	content string
}

// Content implements Article.
func (a *BaseArticle) Content() string {
	return a.content
}

// ID implements Article.
//
// A BaseArticle has not been stored yet, its identifier is always zero.
func (a *BaseArticle) ID() ArticleID {
	return 0
}

// Title implements Article.
func (a *BaseArticle) Title() string {
	return a.title
}

func NewArticle(title string, content string) *BaseArticle {
	return &BaseArticle{
		title:   title,
		content: content,
	}
}

var _ Article = &BaseArticle{}

type ReadOnlyArticle struct {
	id        ArticleID
	title     string
	content   string
	createdAt time.Time
	updatedAt time.Time
}

// Content implements PersistedArticle.
func (a *ReadOnlyArticle) Content() string {
	return a.content
}

// CreatedAt implements PersistedArticle.
func (a *ReadOnlyArticle) CreatedAt() time.Time {
	return a.createdAt
}

// ID implements PersistedArticle.
func (a *ReadOnlyArticle) ID() ArticleID {
	return a.id
}

// Title implements PersistedArticle.
func (a *ReadOnlyArticle) Title() string {
	return a.title
}

// UpdatedAt implements PersistedArticle.
func (a *ReadOnlyArticle) UpdatedAt() time.Time {
	return a.updatedAt
}

func NewReadOnlyArticle(id ArticleID, title string, content string, createdAt time.Time, updatedAt time.Time) *ReadOnlyArticle {
	return &ReadOnlyArticle{
		id:        id,
		title:     title,
		content:   content,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

var _ PersistedArticle = &ReadOnlyArticle{}
