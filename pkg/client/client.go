// Package client is a Go client for the read-only blog JSON API.
package client

import (
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// New returns a client of the API served under serverURL, i.e. the
// blog base URL without the "/api/v1" suffix.
func New(serverURL string, funcs ...OptionFunc) (*Client, error) {
	baseURL, err := url.Parse(serverURL)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse server url '%s'", serverURL)
	}

	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, errors.Errorf("invalid server url '%s': scheme and host are required", serverURL)
	}

	opts := NewOptions(funcs...)

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: opts.Timeout,
			Transport: &RateLimitTransport{
				MaxRetries:  opts.MaxRetries,
				DefaultWait: opts.DefaultWait,
			},
		}
	}

	return &Client{
		baseURL:    baseURL.JoinPath(apiPrefix),
		httpClient: httpClient,
	}, nil
}
