package article

import (
	"context"
	"time"

	"github.com/bornholm/blog/internal/command/common"
	"github.com/bornholm/blog/internal/core/model"
	"github.com/bornholm/blog/internal/core/port"
	"github.com/bornholm/blog/internal/core/service"
	"github.com/bornholm/blog/internal/http/handler/api"
	"github.com/bornholm/blog/pkg/client"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

type articleRow struct {
	ID        int64
	Title     string
	CreatedAt time.Time
}

type commentRow struct {
	Author    string
	Content   string
	CreatedAt time.Time
}

type articleDetail struct {
	articleRow
	Content  string
	Comments []commentRow
}

// articleReader abstracts where read commands fetch articles from.
type articleReader interface {
	ListArticles(ctx context.Context, page int, limit int) ([]articleRow, error)
	GetArticle(ctx context.Context, id model.ArticleID) (*articleDetail, error)
	SearchArticles(ctx context.Context, term string) ([]articleRow, error)
}

func getArticleReader(cCtx *cli.Context) (articleReader, error) {
	apiClient, err := common.GetClient(cCtx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if apiClient != nil {
		return &remoteReader{apiClient}, nil
	}

	manager, err := common.GetArticleManager(cCtx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &localReader{manager}, nil
}

type localReader struct {
	manager *service.ArticleManager
}

func (r *localReader) ListArticles(ctx context.Context, page int, limit int) ([]articleRow, error) {
	articles, err := r.manager.ArticleStore.QueryArticles(ctx, port.QueryArticlesOptions{
		Page:  &page,
		Limit: &limit,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return fromPersistedArticles(articles), nil
}

func (r *localReader) GetArticle(ctx context.Context, id model.ArticleID) (*articleDetail, error) {
	entry, err := r.manager.GetArticle(ctx, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	detail := &articleDetail{
		articleRow: fromPersistedArticle(entry.Article),
		Content:    entry.Article.Content(),
		Comments:   make([]commentRow, 0, len(entry.Comments)),
	}

	for _, c := range entry.Comments {
		detail.Comments = append(detail.Comments, commentRow{
			Author:    c.Author(),
			Content:   c.Content(),
			CreatedAt: c.CreatedAt(),
		})
	}

	return detail, nil
}

func (r *localReader) SearchArticles(ctx context.Context, term string) ([]articleRow, error) {
	articles, err := r.manager.SearchArticles(ctx, term)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return fromPersistedArticles(articles), nil
}

type remoteReader struct {
	client *client.Client
}

func (r *remoteReader) ListArticles(ctx context.Context, page int, limit int) ([]articleRow, error) {
	res, err := r.client.ListArticles(ctx, client.ListArticlesOptions{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return fromArticleHeaders(res.Articles), nil
}

func (r *remoteReader) GetArticle(ctx context.Context, id model.ArticleID) (*articleDetail, error) {
	article, err := r.client.GetArticle(ctx, int64(id))
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return nil, errors.WithStack(port.ErrNotFound)
		}

		return nil, errors.WithStack(err)
	}

	detail := &articleDetail{
		articleRow: fromArticleHeader(article.ArticleHeader),
		Content:    article.Content,
		Comments:   make([]commentRow, 0, len(article.Comments)),
	}

	for _, c := range article.Comments {
		detail.Comments = append(detail.Comments, commentRow{
			Author:    c.Author,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
		})
	}

	return detail, nil
}

func (r *remoteReader) SearchArticles(ctx context.Context, term string) ([]articleRow, error) {
	headers, err := r.client.SearchArticles(ctx, term)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return fromArticleHeaders(headers), nil
}

func fromPersistedArticle(a model.PersistedArticle) articleRow {
	return articleRow{
		ID:        int64(a.ID()),
		Title:     a.Title(),
		CreatedAt: a.CreatedAt(),
	}
}

func fromPersistedArticles(articles []model.PersistedArticle) []articleRow {
	rows := make([]articleRow, 0, len(articles))
	for _, a := range articles {
		rows = append(rows, fromPersistedArticle(a))
	}
	return rows
}

func fromArticleHeader(h api.ArticleHeader) articleRow {
	return articleRow{
		ID:        h.ID,
		Title:     h.Title,
		CreatedAt: h.CreatedAt,
	}
}

func fromArticleHeaders(headers []api.ArticleHeader) []articleRow {
	rows := make([]articleRow, 0, len(headers))
	for _, h := range headers {
		rows = append(rows, fromArticleHeader(h))
	}
	return rows
}

var (
	_ articleReader = &localReader{}
	_ articleReader = &remoteReader{}
)
