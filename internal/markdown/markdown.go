// Package markdown renders article contents to sanitized HTML.
package markdown

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	converter = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)
	policy = bluemonday.UGCPolicy()
)

func Render(source string) (template.HTML, error) {
	var buf bytes.Buffer

	if err := converter.Convert([]byte(source), &buf); err != nil {
		return "", errors.WithStack(err)
	}

	return template.HTML(policy.SanitizeBytes(buf.Bytes())), nil
}
