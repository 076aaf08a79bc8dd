package article

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/blog/internal/core/service"
	"github.com/bornholm/blog/internal/http/handler/webui/article/component"
	"github.com/bornholm/blog/internal/http/handler/webui/common"
	commonComp "github.com/bornholm/blog/internal/http/handler/webui/common/component"
	"github.com/bornholm/blog/internal/validation"
	"github.com/pkg/errors"
)

func (h *Handler) getArticleCreatePage(w http.ResponseWriter, r *http.Request) {
	vmodel := h.newArticleCreatePageVModel(r, component.ArticleFormVModel{}, h.popNotices(w, r)...)

	createPage := component.ArticleFormPage(vmodel)

	templ.Handler(createPage).ServeHTTP(w, r)
}

func (h *Handler) handleArticleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		common.HandleError(w, r, common.NewHTTPError(http.StatusBadRequest))
		return
	}

	form := component.ArticleFormVModel{
		Title:   r.PostFormValue("title"),
		Content: r.PostFormValue("content"),
	}

	_, err := h.articleManager.CreateArticle(ctx, service.ArticleInput{
		Title:   form.Title,
		Content: form.Content,
	})
	if err != nil {
		var validationErrs validation.Errors
		if errors.As(err, &validationErrs) {
			form.Errors = validationErrs

			vmodel := h.newArticleCreatePageVModel(r, form)
			createPage := component.ArticleFormPage(vmodel)

			templ.Handler(createPage).ServeHTTP(w, r)
			return
		}

		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	// The list is rendered in place of a redirect
	notices := append(h.popNotices(w, r), NoticeArticleAdded)

	h.renderArticleListPage(w, r, notices...)
}

func (h *Handler) newArticleCreatePageVModel(r *http.Request, form component.ArticleFormVModel, notices ...string) component.ArticleFormPageVModel {
	ctx := r.Context()

	return component.ArticleFormPageVModel{
		Layout:         commonComp.NewLayoutVModel(ctx, "New article", notices...),
		Heading:        "New article",
		Action:         string(commonComp.BaseURL(ctx, commonComp.WithPath("/articleCreate/"))),
		SubmitLabel:    "Create",
		Form:           form,
		MaxTitleLength: service.MaxTitleLength,
	}
}
