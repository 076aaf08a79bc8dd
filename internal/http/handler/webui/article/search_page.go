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

func (h *Handler) getArticleSearchPage(w http.ResponseWriter, r *http.Request) {
	vmodel, err := h.fillArticleSearchPageViewModel(r)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	vmodel.Layout = commonComp.NewLayoutVModel(r.Context(), "Search", h.popNotices(w, r)...)
	vmodel.Layout.SearchTerm = vmodel.SearchTerm

	searchPage := component.ArticleSearchPage(*vmodel)

	templ.Handler(searchPage).ServeHTTP(w, r)
}

func (h *Handler) fillArticleSearchPageViewModel(r *http.Request) (*component.ArticleSearchPageVModel, error) {
	vmodel := &component.ArticleSearchPageVModel{}

	ctx := r.Context()

	err := common.FillViewModel(
		ctx,
		vmodel, r,
		h.fillArticleSearchPageVModelResults,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return vmodel, nil
}

func (h *Handler) fillArticleSearchPageVModelResults(ctx context.Context, vmodel *component.ArticleSearchPageVModel, r *http.Request) error {
	// A missing term matches every article
	term := r.URL.Query().Get("searchTerm")

	results, err := h.articleManager.SearchArticles(ctx, term)
	if err != nil {
		return errors.WithStack(err)
	}

	vmodel.SearchTerm = term
	vmodel.Results = results

	return nil
}
