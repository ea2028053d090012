package ratelimit

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/charmbracelet/log"
)

// Middleware rejects clients over the limit with 429. Limiter errors fail open.
func Middleware(l Limiter) func(http.Handler) http.Handler {
	logger := log.WithPrefix("ratelimit")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			allowed, err := l.Allow(r.Context(), ip)
			if err != nil {
				logger.Warn("limiter unavailable, allowing request", "ip", ip, "err", err)
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				logger.Info("rate limited", "ip", ip, "path", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"error": http.StatusText(http.StatusTooManyRequests),
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP strips the port; chi's RealIP has already applied proxy headers.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
