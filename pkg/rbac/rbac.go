// Package rbac provides role-gated middleware for admin routes.
package rbac

import (
	"net/http"

	"github.com/hyrahs/shopstore-api/pkg/middleware"
	"github.com/hyrahs/shopstore-api/pkg/response"
)

// HasRole allows the request through only when the verified token carries
// one of the given roles. Must be mounted after middleware.Auth so claims
// are already in the context; an unauthenticated request fails with 403
// (Auth itself handles the 401 cases first).
func HasRole(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := middleware.RoleFromCtx(r.Context())
			if !ok || !allowed[role] {
				response.Forbidden(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
