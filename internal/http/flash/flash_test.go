package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

func TestStore(t *testing.T) {
	store := NewStore(sessions.NewCookieStore([]byte("01234567890123456789012345678901")))

	res := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)

	if err := store.Add(res, req, "Article added"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	cookies := res.Result().Cookies()
	if e, g := 1, len(cookies); e != g {
		t.Fatalf("len(cookies): expected '%v', got '%v'", e, g)
	}

	res = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])

	notices, err := store.Pop(res, req)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(notices); e != g {
		t.Fatalf("len(notices): expected '%v', got '%v': %s", e, g, spew.Sdump(notices))
	}

	if e, g := "Article added", notices[0]; e != g {
		t.Errorf("notices[0]: expected '%v', got '%v'", e, g)
	}

	// Notices are displayed once
	cleared := res.Result().Cookies()
	if e, g := 1, len(cleared); e != g {
		t.Fatalf("len(cleared): expected '%v', got '%v'", e, g)
	}

	res = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cleared[0])

	notices, err = store.Pop(res, req)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 0, len(notices); e != g {
		t.Errorf("len(notices): expected '%v', got '%v'", e, g)
	}
}
