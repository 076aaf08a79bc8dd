package component

import (
	"embed"
	"html/template"
	"io/fs"
	"log/slog"
	"time"

	"github.com/a-h/templ"
	"github.com/bornholm/blog/internal/markdown"
	"github.com/bornholm/go-x/slogx"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

//go:embed templates/*.html
var templates embed.FS

var layout = template.Must(
	template.New("layout.html").
		Funcs(template.FuncMap{
			"route":    route,
			"since":    since,
			"markdown": renderMarkdown,
		}).
		ParseFS(templates, "templates/layout.html"),
)

// ParsePage parses the given page templates on top of the common layout.
// Pages must define a "content" template.
func ParsePage(fsys fs.FS, patterns ...string) (*template.Template, error) {
	page, err := layout.Clone()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	page, err = page.ParseFS(fsys, patterns...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return page, nil
}

func MustParsePage(fsys fs.FS, patterns ...string) *template.Template {
	page, err := ParsePage(fsys, patterns...)
	if err != nil {
		panic(errors.WithStack(err))
	}

	return page
}

func Page(page *template.Template, vmodel any) templ.Component {
	return templ.FromGoHTML(page, vmodel)
}

func since(t time.Time) string {
	return humanize.Time(t)
}

func renderMarkdown(source string) template.HTML {
	html, err := markdown.Render(source)
	if err != nil {
		slog.Error("could not render markdown", slogx.Error(errors.WithStack(err)))
		return template.HTML(template.HTMLEscapeString(source))
	}

	return html
}
