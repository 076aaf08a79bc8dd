package ratelimit

import (
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// Middleware throttles mutating requests per client address. Safe
// methods are never limited.
func Middleware(trustHeaders bool, interval time.Duration, maxBurst int, cacheSize int, ttl time.Duration) func(http.Handler) http.Handler {
	cache := expirable.NewLRU[string, *rate.Limiter](cacheSize, nil, ttl)

	getLimiter := func(remoteAddr string) *rate.Limiter {
		limiter, exists := cache.Get(remoteAddr)
		if !exists {
			limiter = rate.NewLimiter(rate.Every(interval), maxBurst)
			cache.Add(remoteAddr, limiter)
		}

		return limiter
	}

	getRemoteAddr := func(r *http.Request) string {
		if trustHeaders {
			xff := r.Header.Get("X-Forwarded-For")
			if xff != "" {
				ips := strings.Split(xff, ",")
				if len(ips) > 0 {
					return strings.TrimSpace(ips[0])
				}
			}

			xri := r.Header.Get("X-Real-Ip")
			if xri != "" {
				return xri
			}
		}

		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			return r.RemoteAddr
		}

		return ip
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isSafeMethod(r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			remoteAddr := getRemoteAddr(r)
			limiter := getLimiter(remoteAddr)

			reservation := limiter.Reserve()
			if !reservation.OK() {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			if reservation.Delay() > 0 {
				reservation.Cancel()

				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(reservation.Delay().Seconds()))))
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(maxBurst))
			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%.0f", limiter.Tokens()))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(getResetTime(time.Now(), limiter.Tokens(), maxBurst, interval), 10))

			next.ServeHTTP(w, r)
		})
	}
}

// getResetTime returns the unix time, rounded up to the second, at which
// the bucket is full again given one token is added every interval.
func getResetTime(now time.Time, tokens float64, maxBurst int, interval time.Duration) int64 {
	missing := float64(maxBurst) - tokens
	if missing <= 0 {
		return now.Unix()
	}

	reset := now.Add(time.Duration(missing * float64(interval)))

	return int64(math.Ceil(float64(reset.UnixNano()) / float64(time.Second)))
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}
