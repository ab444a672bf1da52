// internal/middleware/auth.go
package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/nexasuite/platform/internal/auth"
	"github.com/nexasuite/platform/internal/service"
	"github.com/nexasuite/platform/internal/tenant"
)

// AuthMiddleware validates the bearer token and installs the tenant scope and
// a fresh per-request permission cache on the context. Everything downstream
// reads identity from tenant.FromContext, never from the raw token.
func AuthMiddleware(tokenManager *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondWithError(w, http.StatusUnauthorized, "No authorization header")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				respondWithError(w, http.StatusUnauthorized, "Invalid authorization header")
				return
			}

			claims, err := tokenManager.Validate(parts[1])
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			userID, err := claims.UserUUID()
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Invalid token claims")
				return
			}
			orgID, err := claims.OrganizationUUID()
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Invalid token claims")
				return
			}

			ctx := tenant.WithScope(r.Context(), tenant.Scope{
				OrganizationID: orgID,
				UserID:         userID,
				SuperAdmin:     claims.SuperAdmin,
			})
			ctx = service.WithPermissionCache(ctx)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// respondWithError sends a JSON error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
