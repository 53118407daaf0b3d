package middleware

import (
	"net/http"
	"strings"

	"goaltracker-backend/infrastructure/config"
	"goaltracker-backend/pkg/common"

	"github.com/golang-jwt/jwt/v5"
)

// Authenticate validates bearer tokens on API routes. When no JWT secret
// is configured the middleware passes every request through, which keeps
// user creation reachable before any token can exist.
func Authenticate(cfg *config.Config) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.AuthEnabled() {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				authHeader = r.Header.Get("authorization")
			}
			if authHeader == "" {
				common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing authorization header")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid authorization header format")
				return
			}

			opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256"})}
			if cfg.JWTIssuer != "" {
				opts = append(opts, jwt.WithIssuer(cfg.JWTIssuer))
			}

			token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(cfg.JWTSecret), nil
			}, opts...)
			if err != nil || !token.Valid {
				common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
