package http

import (
	"net"
	"net/http"

	"github.com/jacksrivastava/shortly/internal/ratelimit"
)

// RateLimitMiddleware applies a per-identity admission check to the routes it
// wraps. Identity is the client's IP address; when that cannot be determined
// the limiter's "unknown" sentinel bucket is used.
func RateLimitMiddleware(limiter ratelimit.Limiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		decision := limiter.Admit(r.Context(), clientIdentity(r))
		if !decision.Allowed {
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIdentity derives a stable rate-limit key from the request's source
// address.
func clientIdentity(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr without a port (e.g. in tests)
		return r.RemoteAddr
	}
	return host
}
