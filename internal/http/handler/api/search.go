package api

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
)

type SearchResponse struct {
	SearchTerm string          `json:"searchTerm"`
	Articles   []ArticleHeader `json:"articles"`
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	term := r.URL.Query().Get("searchTerm")

	articles, err := h.articleManager.SearchArticles(ctx, term)
	if err != nil {
		slog.ErrorContext(ctx, "could not search articles", slogx.Error(err), slog.String("search_term", term))
		writeError(w, r, http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, SearchResponse{
		SearchTerm: term,
		Articles:   toArticleHeaders(articles),
	})
}
