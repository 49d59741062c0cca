package middleware

import (
	"context"
	"net/http"
	"strings"

	"controlemat/internal/domain"
	apperror "controlemat/internal/errors"
	"controlemat/internal/pkg/logger"
	"controlemat/internal/pkg/response"
	"controlemat/internal/pkg/token"
)

// ContextKey é o tipo das chaves que este pacote grava no contexto.
// Context Keys devem ser não-exportadas ou de um tipo único.
type ContextKey int

const (
	UserClaimsKey ContextKey = iota
)

// UserClaims representa os dados extraídos do token JWT e anexados ao contexto.
type UserClaims struct {
	Subject string
	Role    domain.UserRole
}

// TokenService define o contrato de validação necessário para o middleware.
type TokenService interface {
	ValidateToken(tokenString string) (*token.CustomClaims, error)
}

// NewAuthMiddleware cria um middleware que valida o JWT do header
// Authorization: Bearer <token> e anexa as claims ao contexto.
func NewAuthMiddleware(tokenSvc TokenService, log logger.Logger) func(next http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || strings.TrimSpace(tokenString) == "" {
				response.Write(w, r, log, nil, apperror.NewUnauthorizedError("Token de autorização ausente ou malformado."), 0)
				return
			}

			claims, err := tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
			if err != nil {
				log.Debug("Token rejeitado.", map[string]interface{}{"path": r.URL.Path, "reason": err.Error()})
				response.Write(w, r, log, nil, apperror.NewUnauthorizedError("Token inválido ou expirado."), 0)
				return
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, UserClaims{
				Subject: claims.Subject,
				Role:    domain.UserRole(claims.Role),
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		}
	}
}

// GetUserClaimsFromContext é uma função utilitária para extrair as claims no handler.
func GetUserClaimsFromContext(ctx context.Context) (UserClaims, bool) {
	claims, ok := ctx.Value(UserClaimsKey).(UserClaims)
	return claims, ok
}

// PermissionMiddleware só deixa passar requisições cujas claims tenham um dos
// papéis informados. Deve ser aplicado depois de NewAuthMiddleware.
func PermissionMiddleware(log logger.Logger, requiredRoles ...domain.UserRole) func(next http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetUserClaimsFromContext(r.Context())
			if !ok {
				response.Write(w, r, log, nil, apperror.NewUnauthorizedError("Autorização necessária. Token não processado."), 0)
				return
			}

			for _, requiredRole := range requiredRoles {
				if claims.Role == requiredRole {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.JSON(w, log, http.StatusForbidden, domain.ErrorResponse{
				Code:     http.StatusForbidden,
				Category: "FORBIDDEN",
				Message:  "Acesso negado. Você não tem a permissão necessária.",
			})
		}
	}
}
