package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/swipelytics/insights-api/internal/domain"
	"github.com/swipelytics/insights-api/internal/usecases/authenticating"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// publicPaths não exigem autenticação
var publicPaths = map[string]bool{
	"/healthcheck": true,
	"/metrics":     true,
	"/v1/login":    true,
	"/v1/register": true,
}

// AuthMiddleware valida o bearer token das rotas protegidas. Rotas de cron
// aceitam também o segredo estático configurado (para agendadores externos);
// as demais exigem um JWT válido.
func AuthMiddleware(authService authenticating.Authenticator, cronSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				http.Error(w, "Bearer token is required", http.StatusUnauthorized)
				return
			}

			// O agendador externo chama as rotas de cron com o segredo
			// estático, sem usuário associado
			if strings.HasPrefix(r.URL.Path, "/v1/cron/") && cronSecret != "" && tokenString == cronSecret {
				claims := &domain.Claims{
					UserName:   "cron",
					UserActive: true,
					UserRoleID: RoleAdmin,
				}
				ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
