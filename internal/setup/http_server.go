package setup

import (
	"context"

	"github.com/bornholm/blog/internal/config"
	"github.com/bornholm/blog/internal/http"
	"github.com/bornholm/blog/internal/http/handler/api"
	"github.com/bornholm/blog/internal/http/handler/metrics"
	"github.com/bornholm/blog/internal/http/handler/webui"
	"github.com/bornholm/blog/internal/http/middleware/ratelimit"
	"github.com/pkg/errors"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*http.Server, error) {
	articleManager, err := getArticleManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create article manager from config")
	}

	flashStore, err := getFlashStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create flash store from config")
	}

	options := []http.OptionFunc{
		http.WithAddress(conf.HTTP.Address),
		http.WithBaseURL(conf.HTTP.BaseURL),
		http.WithMount("/api/v1/", api.NewHandler(articleManager, conf.HTTP.CORS.AllowedOrigins...)),
		http.WithMount("/", webui.NewHandler(articleManager, flashStore)),
	}

	if conf.HTTP.Metrics.Enabled {
		options = append(options, http.WithMount("/metrics/", metrics.NewHandler()))
	}

	if rateLimit := conf.HTTP.RateLimit; rateLimit.Enabled {
		options = append(options, http.WithMiddleware(ratelimit.Middleware(
			rateLimit.TrustHeaders,
			rateLimit.Interval,
			rateLimit.Burst,
			rateLimit.CacheSize,
			rateLimit.TTL,
		)))
	}

	server := http.NewServer(options...)

	return server, nil
}
