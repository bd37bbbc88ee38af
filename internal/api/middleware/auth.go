package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/stayhub/stayhub-api/internal/api/shared"
	"github.com/stayhub/stayhub-api/internal/domain"
	"github.com/stayhub/stayhub-api/internal/service/auth"
)

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate validates JWT tokens from the Authorization header and adds
// the resolved identity (subject id + admin flag) to the request context.
// Everything downstream of this middleware sees a domain.Identity, never a
// token.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		token := parts[1]

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch err {
			case auth.ErrExpiredToken:
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
			case auth.ErrInvalidToken, auth.ErrWrongTokenType:
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			default:
				slog.Error("failed to validate token", "error", err)
				shared.RespondWithError(
					w,
					r,
					http.StatusInternalServerError,
					"Authentication error",
				)
			}
			return
		}

		identity := domain.Identity{
			SubjectID: claims.UserID,
			IsAdmin:   claims.IsAdmin,
		}
		ctx := context.WithValue(r.Context(), shared.IdentityContextKey, identity)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetIdentity extracts the caller identity from the request context.
// Returns the identity and a boolean indicating if it was found.
func GetIdentity(r *http.Request) (domain.Identity, bool) {
	identity, ok := r.Context().Value(shared.IdentityContextKey).(domain.Identity)
	return identity, ok
}
