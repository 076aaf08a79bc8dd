package client

import (
	"net/http"
	"time"
)

type Options struct {
	// HTTPClient replaces the default rate limit aware client when set
	HTTPClient *http.Client

	Timeout     time.Duration
	MaxRetries  int
	DefaultWait time.Duration
}

type OptionFunc func(opts *Options)

func WithHTTPClient(httpClient *http.Client) OptionFunc {
	return func(opts *Options) {
		opts.HTTPClient = httpClient
	}
}

func WithTimeout(timeout time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.Timeout = timeout
	}
}

// WithMaxRetries sets how many times a throttled request is replayed.
func WithMaxRetries(maxRetries int) OptionFunc {
	return func(opts *Options) {
		opts.MaxRetries = maxRetries
	}
}

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Timeout:     30 * time.Second,
		MaxRetries:  5,
		DefaultWait: time.Second,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}
