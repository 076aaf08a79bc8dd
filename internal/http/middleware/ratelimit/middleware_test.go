package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestMiddleware(t *testing.T) {
	handler := Middleware(false, time.Hour, 2, 10, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	do := func(method string, remoteAddr string) int {
		req := httptest.NewRequest(method, "/articleCreate/", nil)
		req.RemoteAddr = remoteAddr
		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)
		return res.Code
	}

	for i := range 2 {
		if e, g := http.StatusNoContent, do(http.MethodPost, "10.0.0.1:1234"); e != g {
			t.Errorf("request #%d: expected status %v, got %v", i, e, g)
		}
	}

	if e, g := http.StatusTooManyRequests, do(http.MethodPost, "10.0.0.1:1234"); e != g {
		t.Errorf("throttled request: expected status %v, got %v", e, g)
	}

	if e, g := http.StatusNoContent, do(http.MethodGet, "10.0.0.1:1234"); e != g {
		t.Errorf("safe request: expected status %v, got %v", e, g)
	}

	if e, g := http.StatusNoContent, do(http.MethodPost, "10.0.0.2:1234"); e != g {
		t.Errorf("other client: expected status %v, got %v", e, g)
	}
}

func TestGetResetTime(t *testing.T) {
	now := time.Unix(1000, 0)

	type testCase struct {
		Name     string
		Tokens   float64
		Interval time.Duration
		Expected int64
	}

	testCases := []testCase{
		{Name: "FullBucket", Tokens: 2, Interval: time.Second, Expected: 1000},
		{Name: "OneTokenMissing", Tokens: 1, Interval: 10 * time.Second, Expected: 1010},
		{Name: "FractionRoundedUp", Tokens: 1.5, Interval: time.Second, Expected: 1001},
		{Name: "EmptyBucket", Tokens: 0, Interval: time.Minute, Expected: 1120},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if e, g := tc.Expected, getResetTime(now, tc.Tokens, 2, tc.Interval); e != g {
				t.Errorf("getResetTime: expected %v, got %v", e, g)
			}
		})
	}
}
