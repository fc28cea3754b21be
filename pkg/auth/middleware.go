package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/GlebRadaev/library/pkg/utils"
)

type ContextKey string

const StaffIDKey ContextKey = "staffID"

// Middleware rejects requests without a valid staff bearer token and puts
// the staff id into the request context.
func Middleware(jwtService JWTServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := jwtService.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), StaffIDKey, claims.StaffID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
