package article

import (
	"net/http"

	"github.com/pkg/errors"
)

func (h *Handler) handleArticleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	article, err := h.getRequestedArticle(r)
	if err != nil {
		h.handleError(w, r, errors.WithStack(err))
		return
	}

	if err := h.articleManager.DeleteArticle(ctx, article.ID()); err != nil {
		h.handleError(w, r, errors.WithStack(err))
		return
	}

	h.addNotice(w, r, NoticeArticleDeleted)

	h.redirectToList(w, r)
}
