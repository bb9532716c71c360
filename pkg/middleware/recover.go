package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/hyrahs/shopstore-api/pkg/logger"
	"github.com/hyrahs/shopstore-api/pkg/response"
)

// Recovery converts a downstream panic into a logged 500. Mount it above
// Logger so a panic in the logging path itself is still caught.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				logger.WithCtx(r.Context()).Error("panic recovered",
					"panic", v,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)
				response.Internal(w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
