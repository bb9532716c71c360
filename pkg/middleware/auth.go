package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/hyrahs/shopstore-api/pkg/auth"
	"github.com/hyrahs/shopstore-api/pkg/response"
)

// claimsKey is the unexported context key for verified token claims.
type claimsKey struct{}

// Auth returns the bearer-token gate. It extracts the token from the
// Authorization header, verifies it, and attaches the decoded claims to the
// request context. It never mutates stored state: requests are either
// rejected or forwarded.
//
//	no token      → 401 "No token provided"
//	invalid token → 401 "Invalid or expired token"
//	valid token   → claims in context, request proceeds
func Auth(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				response.Unauthorized(w, "No token provided")
				return
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				response.Unauthorized(w, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// ClaimsFromCtx returns the verified claims attached by Auth.
func ClaimsFromCtx(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	return claims, ok
}

// UserIDFromCtx returns the token subject id, if authenticated.
func UserIDFromCtx(ctx context.Context) (string, bool) {
	claims, ok := ClaimsFromCtx(ctx)
	if !ok {
		return "", false
	}
	return claims.UserID, true
}

// RoleFromCtx returns the token role, if authenticated.
func RoleFromCtx(ctx context.Context) (string, bool) {
	claims, ok := ClaimsFromCtx(ctx)
	if !ok {
		return "", false
	}
	return claims.Role, true
}
