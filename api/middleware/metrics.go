// ABOUTME: Request metrics middleware for API endpoints
// ABOUTME: Records status and latency per route pattern

package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// RequestObserver receives one observation per served request
type RequestObserver interface {
	ObserveRequest(method, path string, status int, duration time.Duration)
}

// MetricsMiddleware reports every request to observer. Paths are reported as
// chi route patterns so ids do not become labels.
func MetricsMiddleware(observer RequestObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := wrap(w)

			next.ServeHTTP(wrapped, r)

			path := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					path = pattern
				}
			}
			observer.ObserveRequest(r.Method, path, wrapped.statusCode, time.Since(start))
		})
	}
}
