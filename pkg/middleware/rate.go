// Package middleware provides the HTTP middleware for the API.
package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/hyrahs/shopstore-api/pkg/response"
)

// limiter applies a fixed window counter per client IP.
type limiter struct {
	max    int
	window time.Duration

	mu      sync.Mutex
	windows map[string]*clientWindow
}

type clientWindow struct {
	count   int
	resetAt time.Time
}

func newLimiter(max int, window time.Duration) *limiter {
	l := &limiter{
		max:     max,
		window:  window,
		windows: map[string]*clientWindow{},
	}
	go l.evictLoop()
	return l
}

func (l *limiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	cw := l.windows[ip]
	if cw == nil || now.After(cw.resetAt) {
		cw = &clientWindow{resetAt: now.Add(l.window)}
		l.windows[ip] = cw
	}

	cw.count++
	return cw.count <= l.max
}

// evictLoop drops expired windows so the map stays bounded on long-running
// servers.
func (l *limiter) evictLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		l.mu.Lock()
		for ip, cw := range l.windows {
			if now.After(cw.resetAt) {
				delete(l.windows, ip)
			}
		}
		l.mu.Unlock()
	}
}

// clientIP prefers the first X-Forwarded-For hop (the API sits behind a
// proxy in production), falling back to the socket address.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if first, _, found := strings.Cut(fwd, ","); found {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit caps each client IP at max requests per window.
// Excess requests get 429.
func RateLimit(max int, window time.Duration) func(http.Handler) http.Handler {
	l := newLimiter(max, window)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.allow(clientIP(r)) {
				response.Error(w, http.StatusTooManyRequests, "Too Many Requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
