package article

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/blog/internal/core/model"
	"github.com/bornholm/blog/internal/core/service"
	"github.com/bornholm/blog/internal/http/handler/webui/article/component"
	"github.com/bornholm/blog/internal/http/handler/webui/common"
	commonComp "github.com/bornholm/blog/internal/http/handler/webui/common/component"
	"github.com/bornholm/blog/internal/validation"
	"github.com/pkg/errors"
)

func (h *Handler) getArticleUpdatePage(w http.ResponseWriter, r *http.Request) {
	article, err := h.getRequestedArticle(r)
	if err != nil {
		h.handleError(w, r, errors.WithStack(err))
		return
	}

	form := component.ArticleFormVModel{
		Title:   article.Title(),
		Content: article.Content(),
	}

	vmodel := h.newArticleUpdatePageVModel(r, article, form, h.popNotices(w, r)...)
	updatePage := component.ArticleFormPage(vmodel)

	templ.Handler(updatePage).ServeHTTP(w, r)
}

func (h *Handler) handleArticleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Unknown articles are reported before any validation
	article, err := h.getRequestedArticle(r)
	if err != nil {
		h.handleError(w, r, errors.WithStack(err))
		return
	}

	if err := r.ParseForm(); err != nil {
		common.HandleError(w, r, common.NewHTTPError(http.StatusBadRequest))
		return
	}

	form := component.ArticleFormVModel{
		Title:   r.PostFormValue("title"),
		Content: r.PostFormValue("content"),
	}

	_, err = h.articleManager.UpdateArticle(ctx, article.ID(), service.ArticleInput{
		Title:   form.Title,
		Content: form.Content,
	})
	if err != nil {
		var validationErrs validation.Errors
		if errors.As(err, &validationErrs) {
			form.Errors = validationErrs

			vmodel := h.newArticleUpdatePageVModel(r, article, form)
			updatePage := component.ArticleFormPage(vmodel)

			templ.Handler(updatePage).ServeHTTP(w, r)
			return
		}

		h.handleError(w, r, errors.WithStack(err))
		return
	}

	h.addNotice(w, r, NoticeArticleUpdated)

	redirectURL := commonComp.BaseURL(ctx, commonComp.WithPath("/articleRead", article.ID().String(), "/"))
	http.Redirect(w, r, string(redirectURL), http.StatusSeeOther)
}

func (h *Handler) getRequestedArticle(r *http.Request) (model.PersistedArticle, error) {
	articleID, err := h.articleID(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	article, err := h.articleManager.ArticleStore.GetArticleByID(r.Context(), articleID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return article, nil
}

func (h *Handler) newArticleUpdatePageVModel(r *http.Request, article model.PersistedArticle, form component.ArticleFormVModel, notices ...string) component.ArticleFormPageVModel {
	ctx := r.Context()

	return component.ArticleFormPageVModel{
		Layout:         commonComp.NewLayoutVModel(ctx, article.Title(), notices...),
		Heading:        "Edit article",
		Action:         string(commonComp.BaseURL(ctx, commonComp.WithPath("/articleUpdate", article.ID().String(), "/"))),
		SubmitLabel:    "Save",
		Article:        article,
		Form:           form,
		MaxTitleLength: service.MaxTitleLength,
	}
}
