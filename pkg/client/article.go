package client

import (
	"context"
	"strconv"

	"github.com/bornholm/blog/internal/http/handler/api"
	"github.com/pkg/errors"
)

type ListArticlesOptions struct {
	Page  int
	Limit int
}

func (c *Client) ListArticles(ctx context.Context, opts ListArticlesOptions) (*api.ListArticlesResponse, error) {
	query := []string{"page", strconv.Itoa(opts.Page)}

	if opts.Limit > 0 {
		query = append(query, "limit", strconv.Itoa(opts.Limit))
	}

	var res api.ListArticlesResponse
	if err := c.get(ctx, "/articles", &res, query...); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res, nil
}

// GetArticle returns the article with its comments or ErrNotFound.
func (c *Client) GetArticle(ctx context.Context, articleID int64) (*api.Article, error) {
	var res api.GetArticleResponse
	if err := c.get(ctx, "/articles/"+strconv.FormatInt(articleID, 10), &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res.Article, nil
}

func (c *Client) SearchArticles(ctx context.Context, term string) ([]api.ArticleHeader, error) {
	var res api.SearchResponse
	if err := c.get(ctx, "/search", &res, "searchTerm", term); err != nil {
		return nil, errors.WithStack(err)
	}

	return res.Articles, nil
}
