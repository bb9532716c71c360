package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hyrahs/shopstore-api/pkg/middleware"
)

func corsHandler(extra ...string) http.Handler {
	opts := middleware.DefaultCORSOptions(extra)
	return middleware.CORS(opts)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestCORSNoOriginPassesThrough(t *testing.T) {
	rec := httptest.NewRecorder()
	corsHandler().ServeHTTP(rec, httptest.NewRequest("GET", "/api/products", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("no CORS headers expected without an Origin header")
	}
}

func TestCORSAllowsKnownOrigin(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/products", nil)
	req.Header.Set("Origin", "https://shopstore-sooty.vercel.app")
	rec := httptest.NewRecorder()

	corsHandler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://shopstore-sooty.vercel.app" {
		t.Errorf("Allow-Origin = %q, want the request origin echoed", got)
	}
	if rec.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Error("credentials header missing")
	}
}

func TestCORSAllowsPreviewDeployments(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/products", nil)
	req.Header.Set("Origin", "https://shopstore-feature-xyz.vercel.app")
	rec := httptest.NewRecorder()

	corsHandler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 for pattern-matched preview origin", rec.Code)
	}
}

func TestCORSAllowsConfiguredExtraOrigin(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/products", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()

	corsHandler("http://localhost:3000").ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 for configured extra origin", rec.Code)
	}
}

func TestCORSBlocksUnknownOrigin(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/products", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()

	corsHandler().ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestCORSPreflightShortCircuits(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/orders", nil)
	req.Header.Set("Origin", "https://shopstore-sooty.vercel.app")
	rec := httptest.NewRecorder()

	corsHandler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204 for preflight", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("preflight response missing allowed methods")
	}
}
