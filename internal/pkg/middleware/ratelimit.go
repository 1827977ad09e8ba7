package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"bloghub/internal/api/response"
	apperror "bloghub/internal/errors"
	"bloghub/internal/pkg/cache"
	"bloghub/internal/pkg/logger"
)

// RateLimiter limita cada IP a `limit` requisições por janela de `duration`.
// O contador vive no Redis, então o limite vale para todas as instâncias.
func RateLimiter(client cache.Client, limit int, duration time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			key := "rate-limit:" + ip
			ctx := r.Context()

			count, err := client.Incr(ctx, key)
			if err != nil {
				// Sem Redis não há como contar; a requisição segue.
				log.Error("Falha ao incrementar contador de rate limit.", err)
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				if err := client.Expire(ctx, key, duration); err != nil {
					log.Error("Falha ao definir janela do rate limit.", err)
				}
			}

			if count > int64(limit) {
				w.Header().Set("X-RateLimit-Remaining", "0")
				response.Error(w, r, log, apperror.NewTooManyRequestsError("Rate limit exceeded"))
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(int64(limit)-count, 10))
			next.ServeHTTP(w, r)
		})
	}
}
