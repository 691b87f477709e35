package middleware

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/Anirach/ncd-health-plus/pkg/auth"
	pkgerrors "github.com/Anirach/ncd-health-plus/pkg/errors"
)

// RateLimit throttles callers by principal, or by client IP when the request
// is anonymous. limit is only used for the error message.
func RateLimit(limiter auth.RateLimiter, limit int, errs *pkgerrors.ErrorHandler, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := "ip:" + getClientIP(r)
			if p, ok := auth.PrincipalFrom(r.Context()); ok {
				key = "sub:" + p.Subject
			}

			allowed, err := limiter.Allow(r.Context(), key)
			if err != nil {
				// fail open
				logger.Warn("Rate limiter error", zap.Error(err))
			} else if !allowed {
				w.Header().Set("Retry-After", "60")
				errs.Handle(w, r, pkgerrors.NewRateLimitError(limit, "1m"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
