package article

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/blog/internal/core/model"
	"github.com/bornholm/blog/internal/core/port"
	"github.com/bornholm/blog/internal/core/service"
	"github.com/bornholm/blog/internal/http/flash"
	"github.com/bornholm/blog/internal/http/handler/webui/common"
	commonComp "github.com/bornholm/blog/internal/http/handler/webui/common/component"
	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
)

const (
	NoticeArticleAdded   = "Article added"
	NoticeArticleUpdated = "Article updated"
	NoticeArticleDeleted = "Article deleted"
)

type Handler struct {
	mux            *http.ServeMux
	articleManager *service.ArticleManager
	flash          *flash.Store
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(articleManager *service.ArticleManager, flash *flash.Store) *Handler {
	h := &Handler{
		mux:            http.NewServeMux(),
		articleManager: articleManager,
		flash:          flash,
	}

	h.mux.HandleFunc("GET /{$}", h.getArticleListPage)
	h.mux.HandleFunc("GET /articleCreate/{$}", h.getArticleCreatePage)
	h.mux.HandleFunc("POST /articleCreate/{$}", h.handleArticleCreate)
	h.mux.HandleFunc("GET /articleRead/{articleId}/{$}", h.getArticleReadPage)
	h.mux.HandleFunc("GET /articleUpdate/{articleId}/{$}", h.getArticleUpdatePage)
	h.mux.HandleFunc("POST /articleUpdate/{articleId}/{$}", h.handleArticleUpdate)
	h.mux.HandleFunc("GET /articleDelete/{articleId}/{$}", h.redirectToList)
	h.mux.HandleFunc("POST /articleDelete/{articleId}/{$}", h.handleArticleDelete)
	h.mux.HandleFunc("GET /articleSearch/{$}", h.getArticleSearchPage)
	h.mux.HandleFunc("/", h.getNotFoundPage)

	return h
}

// articleID extracts the article identifier from the request path.
// Malformed identifiers are reported as port.ErrNotFound.
func (h *Handler) articleID(r *http.Request) (model.ArticleID, error) {
	raw := r.PathValue("articleId")

	id, err := model.ParseArticleID(raw)
	if err != nil {
		return 0, errors.WithStack(port.ErrNotFound)
	}

	return id, nil
}

// popNotices never fails the request: a broken session only loses its notices.
func (h *Handler) popNotices(w http.ResponseWriter, r *http.Request) []string {
	notices, err := h.flash.Pop(w, r)
	if err != nil {
		slog.WarnContext(r.Context(), "could not retrieve notices", slogx.Error(err))
		return []string{}
	}

	return notices
}

func (h *Handler) addNotice(w http.ResponseWriter, r *http.Request, notice string) {
	if err := h.flash.Add(w, r, notice); err != nil {
		slog.WarnContext(r.Context(), "could not store notice", slogx.Error(err), slog.String("notice", notice))
	}
}

// handleError renders the error page, offering ways out when the
// requested article does not exist.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, port.ErrNotFound) {
		ctx := r.Context()

		err = common.NewError(
			err.Error(),
			"This article does not exist or has been deleted.",
			http.StatusNotFound,
			commonComp.LinkItem{URL: string(commonComp.BaseURL(ctx, commonComp.WithPath("/"))), Label: "Back to the articles"},
			commonComp.LinkItem{URL: string(commonComp.BaseURL(ctx, commonComp.WithPath("/articleCreate/"))), Label: "Write a new article"},
		)
	}

	common.HandleError(w, r, err)
}

func (h *Handler) getNotFoundPage(w http.ResponseWriter, r *http.Request) {
	common.HandleError(w, r, common.ErrNotFound)
}

var _ http.Handler = &Handler{}
