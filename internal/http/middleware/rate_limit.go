package middleware

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/stayloop/hotel-bookings/internal/http/response"
	redisrepo "github.com/stayloop/hotel-bookings/internal/repo/redis"
	"github.com/stayloop/hotel-bookings/pkg/logger"
)

// RateLimiter throttles credential endpoints per client IP.
type RateLimiter struct {
	repo       redisrepo.RateLimitRepo
	requests   int
	window     time.Duration
	trustProxy bool
}

func NewRateLimiter(repo redisrepo.RateLimitRepo, requests int, window time.Duration, trustProxy bool) *RateLimiter {
	return &RateLimiter{repo: repo, requests: requests, window: window, trustProxy: trustProxy}
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := "ip:" + rl.clientIP(r)

		allowed, err := rl.repo.Allow(r.Context(), key, rl.requests, rl.window)
		if err != nil {
			// Fail open: a Redis outage must not lock everyone out
			logger.WarnContext(r.Context(), "Rate limit check failed", "error", err)
		} else if !allowed {
			response.RateLimit(w, "Too many requests. Try again later.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP picks the limiter key. Forwarded headers are honored only when the
// process sits behind a trusted proxy; otherwise a direct client could set
// X-Forwarded-For and choose its own key.
func (rl *RateLimiter) clientIP(r *http.Request) string {
	if rl.trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			if idx := strings.Index(xff, ","); idx != -1 {
				return strings.TrimSpace(xff[:idx])
			}
			return strings.TrimSpace(xff)
		}
		if xri := r.Header.Get("X-Real-IP"); xri != "" {
			return strings.TrimSpace(xri)
		}
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
