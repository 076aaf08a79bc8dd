package component

import "github.com/a-h/templ"

type ErrorPageVModel struct {
	Layout  LayoutVModel
	Message string
	Links   []LinkItem
}

var errorPage = MustParsePage(templates, "templates/error.html")

func ErrorPage(vmodel ErrorPageVModel) templ.Component {
	return Page(errorPage, vmodel)
}
