package component

import (
	"embed"

	"github.com/a-h/templ"
	commonComp "github.com/bornholm/blog/internal/http/handler/webui/common/component"
)

//go:embed templates/*.html
var templates embed.FS

var (
	listPage   = commonComp.MustParsePage(templates, "templates/list.html")
	readPage   = commonComp.MustParsePage(templates, "templates/read.html")
	formPage   = commonComp.MustParsePage(templates, "templates/form.html")
	searchPage = commonComp.MustParsePage(templates, "templates/search.html")
)

func ArticleListPage(vmodel ArticleListPageVModel) templ.Component {
	return commonComp.Page(listPage, vmodel)
}

func ArticleReadPage(vmodel ArticleReadPageVModel) templ.Component {
	return commonComp.Page(readPage, vmodel)
}

func ArticleFormPage(vmodel ArticleFormPageVModel) templ.Component {
	return commonComp.Page(formPage, vmodel)
}

func ArticleSearchPage(vmodel ArticleSearchPageVModel) templ.Component {
	return commonComp.Page(searchPage, vmodel)
}
