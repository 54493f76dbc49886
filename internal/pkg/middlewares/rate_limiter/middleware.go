package rate_limiter

import (
	"net/http"
	"strconv"

	"dispatch/internal/pkg/middlewares/route"
	"dispatch/pkg/logger"
)

func Middleware(log handlerLogger, limit int, rlimiter Limiter) func(http.Handler) http.Handler {
	limitHeader := strconv.Itoa(limit)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rlimiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			handlerPath := route.Template(r)

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", handlerPath),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")

			RateLimitExceededTotal.WithLabelValues(r.Method, handlerPath).Inc()

			w.Header().Set("X-RateLimit-Limit", limitHeader)
			w.Header().Set("Retry-After", "1")
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
		})
	}
}
