package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"controlemat/internal/domain"
	"controlemat/internal/pkg/cache"
	"controlemat/internal/pkg/logger"
	"controlemat/internal/pkg/response"
)

// RateLimiter limita cada IP a limit requisições por janela fixa de duration.
// Se o Redis falhar a requisição segue (o limite é proteção, não requisito).
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
				log.Warn("Rate limiter indisponível; requisição liberada.", map[string]interface{}{"error": err.Error()})
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				if err := client.Expire(ctx, key, duration); err != nil {
					log.Warn("Falha ao definir expiração do rate limit.", map[string]interface{}{"error": err.Error()})
				}
			}

			if count > int64(limit) {
				retryAfter := duration
				ttl, err := client.TTL(ctx, key)
				switch {
				case err != nil:
					log.Warn("Falha ao consultar expiração do rate limit.", map[string]interface{}{"error": err.Error()})
				case ttl > 0:
					retryAfter = ttl
				default:
					// Chave sem expiração (o Expire da primeira requisição falhou): a janela é reiniciada.
					if err := client.Expire(ctx, key, duration); err != nil {
						log.Warn("Falha ao definir expiração do rate limit.", map[string]interface{}{"error": err.Error()})
					}
				}
				w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Round(time.Second).Seconds())))
				w.Header().Set("X-RateLimit-Remaining", "0")
				response.JSON(w, log, http.StatusTooManyRequests, domain.ErrorResponse{
					Code:     http.StatusTooManyRequests,
					Category: "RATE_LIMITED",
					Message:  "Limite de requisições excedido.",
				})
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(int64(limit)-count, 10))
			next.ServeHTTP(w, r)
		})
	}
}
