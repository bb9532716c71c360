// Package reqid assigns every request a correlation id.
//
// The id travels three ways: in the request context (read it with FromCtx),
// in the X-Request-ID response header, and on every structured log line via
// the Logger middleware.
package reqid

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
)

// Header carries the id between services.
const Header = "X-Request-ID"

// maxInboundLen bounds ids accepted from clients; anything longer is
// replaced rather than echoed into logs.
const maxInboundLen = 64

type ctxKey struct{}

// New returns a random 32-character hex id.
func New() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// WithValue stores id in ctx.
func WithValue(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromCtx returns the request id, or "" when none was assigned.
func FromCtx(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// Middleware reuses a sane inbound X-Request-ID (so a gateway's id survives
// the hop) or generates a fresh one, then exposes it via context and the
// response header.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(Header)
			if id == "" || len(id) > maxInboundLen {
				id = New()
			}

			w.Header().Set(Header, id)
			next.ServeHTTP(w, r.WithContext(WithValue(r.Context(), id)))
		})
	}
}
