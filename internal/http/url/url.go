package url

import (
	"net/url"
	"path"
	"strings"
)

type MutationFunc func(u *url.URL)

// Mutate applies the given mutations on a copy of the url.
func Mutate(u *url.URL, funcs ...MutationFunc) *url.URL {
	copy := *u
	mutated := &copy

	for _, fn := range funcs {
		fn(mutated)
	}

	return mutated
}

// WithPath appends the given segments to the url path. The trailing
// slash of the last segment is kept.
func WithPath(paths ...string) MutationFunc {
	return func(u *url.URL) {
		if len(paths) == 0 {
			return
		}

		trailingSlash := strings.HasSuffix(paths[len(paths)-1], "/")

		joined := path.Join(append([]string{"/", u.Path}, paths...)...)
		if trailingSlash && !strings.HasSuffix(joined, "/") {
			joined += "/"
		}

		u.Path = joined
	}
}

// WithValues adds the given key/value pairs to the query string.
func WithValues(keyValues ...string) MutationFunc {
	return func(u *url.URL) {
		query := u.Query()

		for i := 0; i+1 < len(keyValues); i += 2 {
			query.Add(keyValues[i], keyValues[i+1])
		}

		u.RawQuery = query.Encode()
	}
}
