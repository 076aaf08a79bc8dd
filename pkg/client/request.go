package client

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/bornholm/blog/internal/http/handler/api"
	httpURL "github.com/bornholm/blog/internal/http/url"
	"github.com/pkg/errors"
)

const apiPrefix = "/api/v1"

var ErrNotFound = errors.New("not found")

// get fetches the given API path with the given query key/value pairs
// and decodes the JSON body into result.
func (c *Client) get(ctx context.Context, path string, result any, keyValues ...string) error {
	endpoint := httpURL.Mutate(c.baseURL, httpURL.WithPath(path), httpURL.WithValues(keyValues...))

	slog.DebugContext(ctx, "new client request", slog.String("url", endpoint.String()))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return errors.WithStack(err)
	}

	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}

	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return errors.WithStack(ErrNotFound)
	}

	if res.StatusCode != http.StatusOK {
		return errors.WithStack(decodeError(res))
	}

	if err := json.NewDecoder(res.Body).Decode(result); err != nil {
		return errors.Wrap(err, "could not decode response")
	}

	return nil
}

// decodeError builds an error from an api.ErrorResponse body, falling
// back to the status line.
func decodeError(res *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(res.Body, 1<<16))
	if err != nil {
		return errors.Wrapf(err, "unexpected response code %d", res.StatusCode)
	}

	var errRes api.ErrorResponse
	if err := json.Unmarshal(body, &errRes); err != nil || errRes.Error == "" {
		return errors.Errorf("unexpected response code %d (%s)", res.StatusCode, res.Status)
	}

	return errors.Errorf("unexpected response code %d: %s", res.StatusCode, errRes.Error)
}
