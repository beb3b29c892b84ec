package http

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dfcastellanos/clientes-api/internal/logger"
	"github.com/dfcastellanos/clientes-api/internal/ratelimit"
	"github.com/dfcastellanos/clientes-api/internal/utils"
)

// withRateLimit throttles requests against the given limiter before any
// further processing happens. The counter key is the authenticated user's ID
// when one is already present in the request context, otherwise the caller's
// IP address.
//
// Rejected requests receive HTTP 429 with "X-RateLimit-Limit",
// "X-RateLimit-Remaining" and "Retry-After" headers describing the current
// window. Limiter failures fail open: the request proceeds and the error is
// logged.
func (h *Handler) withRateLimit(limiter ratelimit.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			result, err := limiter.Allow(r.Context(), rateLimitKey(r))
			if err != nil {
				log.Err(err).Msg("rate limiter failed, letting request through")
				next.ServeHTTP(w, r)
				return
			}

			header := w.Header()
			header.Set("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
			header.Set("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))

			if !result.Allowed {
				log.Info().
					Str("key", rateLimitKey(r)).
					Int64("hits", result.CurrentHits).
					Msg("request rate limited")
				retryAfter := int(result.RetryAfter / time.Second)
				if result.RetryAfter%time.Second != 0 {
					retryAfter++ // round up, Retry-After has second granularity
				}
				header.Set("Retry-After", strconv.Itoa(retryAfter))
				http.Error(w, "too many requests", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// rateLimitKey resolves the limiter key for a request: the authenticated
// user's ID when available, the client IP otherwise.
func rateLimitKey(r *http.Request) string {
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		return "user:" + strconv.FormatInt(userID, 10)
	}
	return "ip:" + clientIP(r)
}

// clientIP returns the first hop of X-Forwarded-For when present, falling
// back to the host part of RemoteAddr.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if first, _, found := strings.Cut(forwarded, ","); found || first != "" {
			return strings.TrimSpace(first)
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
