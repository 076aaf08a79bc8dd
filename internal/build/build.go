// Package build exposes version information injected at link time,
// e.g. -ldflags "-X github.com/bornholm/blog/internal/build.ShortVersion=v1.0.0"
package build

var (
	ShortVersion = "unknown"
	LongVersion  = "unknown"
)
