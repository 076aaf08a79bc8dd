package client

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// RateLimitTransport replays requests answered with 429 Too Many Requests
// once the delay advertised by the server has elapsed.
type RateLimitTransport struct {
	Base        http.RoundTripper
	MaxRetries  int
	DefaultWait time.Duration
}

func (t *RateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	ctx := req.Context()

	for attempt := 0; ; attempt++ {
		res, err := base.RoundTrip(req)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		if res.StatusCode != http.StatusTooManyRequests || attempt >= t.MaxRetries {
			return res, nil
		}

		wait := t.retryDelay(res.Header, time.Now())

		_, _ = io.Copy(io.Discard, res.Body)
		res.Body.Close()

		slog.DebugContext(ctx, "request throttled, will retry", slog.Duration("wait", wait), slog.Int("attempt", attempt+1))

		if req, err = rewind(req); err != nil {
			return nil, errors.WithStack(err)
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, errors.WithStack(ctx.Err())
		case <-timer.C:
		}
	}
}

// retryDelay reads Retry-After (seconds or HTTP date) then
// X-RateLimit-Reset (unix time).
func (t *RateLimitTransport) retryDelay(header http.Header, now time.Time) time.Duration {
	if retryAfter := header.Get("Retry-After"); retryAfter != "" {
		if seconds, err := strconv.Atoi(retryAfter); err == nil && seconds >= 0 {
			return time.Duration(seconds) * time.Second
		}

		if date, err := http.ParseTime(retryAfter); err == nil {
			return max(date.Sub(now), 0)
		}
	}

	if reset := header.Get("X-RateLimit-Reset"); reset != "" {
		if unix, err := strconv.ParseInt(reset, 10, 64); err == nil {
			if wait := time.Unix(unix, 0).Sub(now); wait > 0 {
				return wait
			}
		}
	}

	return t.DefaultWait
}

func rewind(req *http.Request) (*http.Request, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return req, nil
	}

	if req.GetBody == nil {
		return nil, errors.New("cannot replay a request with a one-time body")
	}

	body, err := req.GetBody()
	if err != nil {
		return nil, errors.Wrap(err, "could not rewind request body")
	}

	replay := req.Clone(req.Context())
	replay.Body = body

	return replay, nil
}
