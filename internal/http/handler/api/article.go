package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/bornholm/blog/internal/core/model"
	"github.com/bornholm/blog/internal/core/port"
	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
)

type ListArticlesResponse struct {
	Articles []ArticleHeader `json:"articles"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	Limit    int             `json:"limit"`
}

type ArticleHeader struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Article struct {
	ArticleHeader
	Content  string    `json:"content"`
	Comments []Comment `json:"comments"`
}

type Comment struct {
	ID        int64     `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type GetArticleResponse struct {
	Article Article `json:"article"`
}

func (h *Handler) handleListArticles(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := max(getQueryPage(query, 0), 0)
	limit := min(max(getQueryLimit(query, 10), 1), 100)

	ctx := r.Context()

	articles, err := h.articleManager.ArticleStore.QueryArticles(ctx, port.QueryArticlesOptions{
		Page:  &page,
		Limit: &limit,
	})
	if err != nil {
		slog.ErrorContext(ctx, "could not query articles", slogx.Error(err))
		writeError(w, r, http.StatusInternalServerError)
		return
	}

	total, err := h.articleManager.ArticleStore.CountArticles(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "could not count articles", slogx.Error(err))
		writeError(w, r, http.StatusInternalServerError)
		return
	}

	res := ListArticlesResponse{
		Articles: toArticleHeaders(articles),
		Total:    total,
		Page:     page,
		Limit:    limit,
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *Handler) handleGetArticle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	articleID, err := model.ParseArticleID(r.PathValue("articleID"))
	if err != nil {
		writeError(w, r, http.StatusNotFound)
		return
	}

	entry, err := h.articleManager.GetArticle(ctx, articleID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			writeError(w, r, http.StatusNotFound)
			return
		}

		slog.ErrorContext(ctx, "could not retrieve article", slogx.Error(err), slog.String("article_id", articleID.String()))
		writeError(w, r, http.StatusInternalServerError)
		return
	}

	article := Article{
		ArticleHeader: toArticleHeader(entry.Article),
		Content:       entry.Article.Content(),
		Comments:      make([]Comment, 0, len(entry.Comments)),
	}

	for _, c := range entry.Comments {
		article.Comments = append(article.Comments, Comment{
			ID:        int64(c.ID()),
			Author:    c.Author(),
			Content:   c.Content(),
			CreatedAt: c.CreatedAt(),
		})
	}

	writeJSON(w, r, http.StatusOK, GetArticleResponse{Article: article})
}

func toArticleHeader(a model.PersistedArticle) ArticleHeader {
	return ArticleHeader{
		ID:        int64(a.ID()),
		Title:     a.Title(),
		CreatedAt: a.CreatedAt(),
		UpdatedAt: a.UpdatedAt(),
	}
}

func toArticleHeaders(articles []model.PersistedArticle) []ArticleHeader {
	headers := make([]ArticleHeader, 0, len(articles))
	for _, a := range articles {
		headers = append(headers, toArticleHeader(a))
	}
	return headers
}
