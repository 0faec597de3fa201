package transport

import (
	"net/http"
	"strconv"

	"github.com/aquatour/crm-backend/cmd/config"
	"github.com/aquatour/crm-backend/constant"
	redisrepo "github.com/aquatour/crm-backend/repository/redis"
	"github.com/aquatour/crm-backend/utils/errors"
	"github.com/aquatour/crm-backend/utils/logger"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RateLimitMiddleware enforces per-IP fixed windows in Redis. The login
// endpoint gets its own tighter window so password guessing is throttled
// independently of normal traffic.
func RateLimitMiddleware(redisRepo redisrepo.Repository, cfg *config.Config) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if redisRepo == nil {
				next.ServeHTTP(w, r)
				return
			}

			ip := clientIP(r)
			key := "ratelimit:general:" + ip
			limit := cfg.RateLimit.RequestsPerWindow
			window := cfg.RateLimit.Window

			if r.URL.Path == "/api/auth/login" {
				key = loginRateKey(ip)
				limit = cfg.RateLimit.LoginAttempts
				window = cfg.RateLimit.LoginWindow
			}

			count, ttl, err := redisRepo.IncrementWindow(r.Context(), key, window)
			if err != nil {
				// rate limiting degrades open when Redis is unavailable
				logger.Warn("[RateLimit] err IncrementWindow", zap.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}

			if count > int64(limit) {
				retryAfter := int(ttl.Seconds())
				if retryAfter < 1 {
					retryAfter = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				writeError(w, errors.SetCustomErrorf(constant.ErrTooManyRequests,
					"Too many requests, retry in %d seconds", retryAfter))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func loginRateKey(ip string) string {
	return "ratelimit:login:" + ip
}
