package article

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/blog/internal/http/handler/webui/article/component"
	"github.com/bornholm/blog/internal/http/handler/webui/common"
	commonComp "github.com/bornholm/blog/internal/http/handler/webui/common/component"
	"github.com/pkg/errors"
)

func (h *Handler) getArticleListPage(w http.ResponseWriter, r *http.Request) {
	h.renderArticleListPage(w, r, h.popNotices(w, r)...)
}

func (h *Handler) renderArticleListPage(w http.ResponseWriter, r *http.Request, notices ...string) {
	vmodel, err := h.fillArticleListPageViewModel(r)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	vmodel.Layout = commonComp.NewLayoutVModel(r.Context(), "Articles", notices...)

	listPage := component.ArticleListPage(*vmodel)

	templ.Handler(listPage).ServeHTTP(w, r)
}

func (h *Handler) fillArticleListPageViewModel(r *http.Request) (*component.ArticleListPageVModel, error) {
	vmodel := &component.ArticleListPageVModel{}

	ctx := r.Context()

	err := common.FillViewModel(
		ctx,
		vmodel, r,
		h.fillArticleListPageVModelEntries,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return vmodel, nil
}

func (h *Handler) fillArticleListPageVModelEntries(ctx context.Context, vmodel *component.ArticleListPageVModel, r *http.Request) error {
	entries, err := h.articleManager.ListArticles(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	vmodel.Entries = entries

	return nil
}

func (h *Handler) redirectToList(w http.ResponseWriter, r *http.Request) {
	redirectURL := commonComp.BaseURL(r.Context(), commonComp.WithPath("/"))
	http.Redirect(w, r, string(redirectURL), http.StatusSeeOther)
}
