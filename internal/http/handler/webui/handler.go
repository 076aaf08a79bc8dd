package webui

import (
	"net/http"
	"strings"

	"github.com/bornholm/blog/internal/core/service"
	"github.com/bornholm/blog/internal/http/flash"
	"github.com/bornholm/blog/internal/http/handler/webui/article"
)

type Handler struct {
	mux *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(articleManager *service.ArticleManager, flash *flash.Store) *Handler {
	h := &Handler{
		mux: http.NewServeMux(),
	}

	mount(h.mux, "/", article.NewHandler(articleManager, flash))

	return h
}

func mount(mux *http.ServeMux, prefix string, handler http.Handler) {
	trimmed := strings.TrimSuffix(prefix, "/")

	if len(trimmed) > 0 {
		mux.Handle(prefix, http.StripPrefix(trimmed, handler))
	} else {
		mux.Handle(prefix, handler)
	}
}

var _ http.Handler = &Handler{}
