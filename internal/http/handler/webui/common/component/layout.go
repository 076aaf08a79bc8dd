package component

import (
	"context"
	"net/url"

	httpCtx "github.com/bornholm/blog/internal/http/context"
	httpURL "github.com/bornholm/blog/internal/http/url"
)

type LinkItem struct {
	URL   string
	Label string
}

type NavItem struct {
	LinkItem
	Active bool
}

type LayoutVModel struct {
	BaseURL    *url.URL
	Title      string
	Notices    []string
	SearchTerm string
	Navigation []NavItem
}

func NewLayoutVModel(ctx context.Context, title string, notices ...string) LayoutVModel {
	if notices == nil {
		notices = []string{}
	}

	return LayoutVModel{
		BaseURL: httpCtx.BaseURL(ctx),
		Title:   title,
		Notices: notices,
		Navigation: []NavItem{
			newNavItem(ctx, "Articles", "/"),
			newNavItem(ctx, "New article", "/articleCreate/"),
		},
	}
}

func newNavItem(ctx context.Context, label string, path string) NavItem {
	href := httpURL.Mutate(httpCtx.BaseURL(ctx), WithPath(path))

	return NavItem{
		LinkItem: LinkItem{URL: href.String(), Label: label},
		Active:   MatchPath(ctx, href.Path),
	}
}
