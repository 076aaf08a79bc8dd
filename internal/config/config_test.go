package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestParseDefaults(t *testing.T) {
	conf, err := Parse()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := ":3002", conf.HTTP.Address; e != g {
		t.Errorf("conf.HTTP.Address: expected '%v', got '%v'", e, g)
	}

	if e, g := DriverSQLite, conf.Storage.Database.Driver; e != g {
		t.Errorf("conf.Storage.Database.Driver: expected '%v', got '%v'", e, g)
	}

	if e, g := slog.LevelInfo, conf.Logger.Level; e != g {
		t.Errorf("conf.Logger.Level: expected '%v', got '%v'", e, g)
	}
}

func TestParseEnv(t *testing.T) {
	t.Setenv("BLOG_LOGGER_LEVEL", "debug")
	t.Setenv("BLOG_HTTP_ADDRESS", ":8080")
	t.Setenv("BLOG_HTTP_SESSION_KEYS", "foo,bar")
	t.Setenv("BLOG_STORAGE_DATABASE_DRIVER", "postgres")
	t.Setenv("BLOG_CACHE_TTL", "30s")

	conf, err := Parse()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := slog.LevelDebug, conf.Logger.Level; e != g {
		t.Errorf("conf.Logger.Level: expected '%v', got '%v'", e, g)
	}

	if e, g := ":8080", conf.HTTP.Address; e != g {
		t.Errorf("conf.HTTP.Address: expected '%v', got '%v'", e, g)
	}

	if e, g := 2, len(conf.HTTP.Session.Keys); e != g {
		t.Errorf("len(conf.HTTP.Session.Keys): expected '%v', got '%v'", e, g)
	}

	if e, g := DriverPostgres, conf.Storage.Database.Driver; e != g {
		t.Errorf("conf.Storage.Database.Driver: expected '%v', got '%v'", e, g)
	}

	if e, g := 30*time.Second, conf.Cache.TTL; e != g {
		t.Errorf("conf.Cache.TTL: expected '%v', got '%v'", e, g)
	}
}
