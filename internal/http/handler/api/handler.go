package api

import (
	"net/http"

	"github.com/bornholm/blog/internal/core/service"
	"github.com/rs/cors"
)

type Handler struct {
	articleManager *service.ArticleManager
	mux            *http.ServeMux
	handler        http.Handler
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.handler.ServeHTTP(w, r)
}

func NewHandler(articleManager *service.ArticleManager, allowedOrigins ...string) *Handler {
	h := &Handler{
		articleManager: articleManager,
		mux:            &http.ServeMux{},
	}

	h.mux.HandleFunc("GET /articles", h.handleListArticles)
	h.mux.HandleFunc("GET /articles/{articleID}", h.handleGetArticle)
	h.mux.HandleFunc("GET /search", h.handleSearch)

	h.handler = cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead},
	}).Handler(h.mux)

	return h
}

var _ http.Handler = &Handler{}
