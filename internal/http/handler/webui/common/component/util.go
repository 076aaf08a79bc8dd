package component

import (
	"context"
	"fmt"
	"net/url"

	"github.com/a-h/templ"
	httpCtx "github.com/bornholm/blog/internal/http/context"
	httpURL "github.com/bornholm/blog/internal/http/url"
)

var WithPath = httpURL.WithPath

func BaseURL(ctx context.Context, funcs ...httpURL.MutationFunc) templ.SafeURL {
	baseURL := httpCtx.BaseURL(ctx)
	mutated := httpURL.Mutate(baseURL, funcs...)
	return templ.SafeURL(mutated.String())
}

// MatchPath reports whether the current request targets the given path.
func MatchPath(ctx context.Context, path string) bool {
	currentURL := httpCtx.CurrentURL(ctx)
	return currentURL.Path == path
}

// route builds an url relative to the base url from the given path
// segments.
func route(baseURL *url.URL, segments ...any) string {
	if baseURL == nil {
		baseURL = &url.URL{Path: "/"}
	}

	paths := make([]string, 0, len(segments))
	for _, s := range segments {
		paths = append(paths, fmt.Sprint(s))
	}

	return httpURL.Mutate(baseURL, WithPath(paths...)).String()
}
