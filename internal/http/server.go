package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	httpCtx "github.com/bornholm/blog/internal/http/context"
	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
	sloghttp "github.com/samber/slog-http"
)

type Server struct {
	opts *Options
}

// Run starts listening and blocks until the context is canceled or
// the server fails.
func (s *Server) Run(ctx context.Context) error {
	handler, err := s.Handler()
	if err != nil {
		return errors.WithStack(err)
	}

	server := &http.Server{
		Addr:              s.opts.Address,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	errs := make(chan error, 1)

	go func() {
		slog.InfoContext(ctx, "http server listening", slog.String("address", s.opts.Address), slog.String("baseURL", s.opts.BaseURL))

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- errors.WithStack(err)
		}

		close(errs)
	}()

	select {
	case <-ctx.Done():
		slog.InfoContext(ctx, "shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return errors.WithStack(err)
		}

		return nil

	case err, ok := <-errs:
		if !ok {
			return nil
		}

		return errors.WithStack(err)
	}
}

// Handler returns the root handler of the server.
func (s *Server) Handler() (http.Handler, error) {
	baseURL, err := url.Parse(s.opts.BaseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse base url '%s'", s.opts.BaseURL)
	}

	if !strings.HasSuffix(baseURL.Path, "/") {
		baseURL.Path += "/"
	}

	mux := http.NewServeMux()

	for prefix, handler := range s.opts.Mounts {
		for i := len(s.opts.Middlewares) - 1; i >= 0; i-- {
			handler = s.opts.Middlewares[i](handler)
		}

		mount(mux, prefix, handler)
	}

	var root http.Handler = mux

	basePath := strings.TrimSuffix(baseURL.Path, "/")
	if basePath != "" {
		root = http.StripPrefix(basePath, root)
	}

	root = s.withContext(baseURL, root)
	root = sloghttp.Recovery(root)
	root = sloghttp.New(slog.Default())(root)

	return root, nil
}

func (s *Server) withContext(baseURL *url.URL, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		currentURL := *r.URL

		ctx = httpCtx.SetBaseURL(ctx, baseURL)
		ctx = httpCtx.SetCurrentURL(ctx, &currentURL)
		ctx = slogx.WithAttrs(ctx, slog.String("method", r.Method), slog.String("path", r.URL.Path))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func mount(mux *http.ServeMux, prefix string, handler http.Handler) {
	trimmed := strings.TrimSuffix(prefix, "/")

	if len(trimmed) > 0 {
		mux.Handle(prefix, http.StripPrefix(trimmed, handler))
	} else {
		mux.Handle(prefix, handler)
	}
}

func NewServer(funcs ...OptionFunc) *Server {
	opts := NewOptions(funcs...)
	return &Server{
		opts: opts,
	}
}
