package context

import (
	"context"
	"net/url"
)

const keyCurrentURL contextKey = "currentURL"

func CurrentURL(ctx context.Context) *url.URL {
	currentURL, ok := ctx.Value(keyCurrentURL).(*url.URL)
	if !ok {
		return &url.URL{Path: "/"}
	}

	return currentURL
}

func SetCurrentURL(ctx context.Context, u *url.URL) context.Context {
	return context.WithValue(ctx, keyCurrentURL, u)
}
