package article

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/blog/internal/http/handler/webui/article/component"
	"github.com/bornholm/blog/internal/http/handler/webui/common"
	commonComp "github.com/bornholm/blog/internal/http/handler/webui/common/component"
	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
)

func (h *Handler) getArticleReadPage(w http.ResponseWriter, r *http.Request) {
	vmodel, err := h.fillArticleReadPageViewModel(r)
	if err != nil {
		h.handleError(w, r, errors.WithStack(err))
		return
	}

	vmodel.Layout = commonComp.NewLayoutVModel(r.Context(), vmodel.Entry.Article.Title(), h.popNotices(w, r)...)

	readPage := component.ArticleReadPage(*vmodel)

	templ.Handler(readPage).ServeHTTP(w, r)
}

func (h *Handler) fillArticleReadPageViewModel(r *http.Request) (*component.ArticleReadPageVModel, error) {
	vmodel := &component.ArticleReadPageVModel{}

	ctx := r.Context()

	err := common.FillViewModel(
		ctx,
		vmodel, r,
		h.fillArticleReadPageVModelEntry,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return vmodel, nil
}

func (h *Handler) fillArticleReadPageVModelEntry(ctx context.Context, vmodel *component.ArticleReadPageVModel, r *http.Request) error {
	articleID, err := h.articleID(r)
	if err != nil {
		return errors.WithStack(err)
	}

	ctx = slogx.WithAttrs(ctx, slog.String("article_id", articleID.String()))

	entry, err := h.articleManager.GetArticle(ctx, articleID)
	if err != nil {
		return errors.WithStack(err)
	}

	vmodel.Entry = entry

	return nil
}
