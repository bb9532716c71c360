package reqid_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hyrahs/shopstore-api/pkg/reqid"
)

func TestMiddlewareGeneratesID(t *testing.T) {
	var seen string
	h := reqid.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = reqid.FromCtx(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if len(seen) != 32 {
		t.Errorf("context id = %q, want 32 hex chars", seen)
	}
	if got := rec.Header().Get(reqid.Header); got != seen {
		t.Errorf("header id %q differs from context id %q", got, seen)
	}
}

func TestMiddlewareHonoursInboundID(t *testing.T) {
	var seen string
	h := reqid.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = reqid.FromCtx(r.Context())
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(reqid.Header, "gateway-id-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if seen != "gateway-id-42" {
		t.Errorf("context id = %q, want inbound id reused", seen)
	}
}

func TestMiddlewareReplacesOversizedID(t *testing.T) {
	var seen string
	h := reqid.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = reqid.FromCtx(r.Context())
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(reqid.Header, strings.Repeat("x", 200))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if strings.Contains(seen, "x") || len(seen) != 32 {
		t.Errorf("oversized inbound id should be replaced, got %q", seen)
	}
}

func TestFromCtxWithoutID(t *testing.T) {
	if got := reqid.FromCtx(httptest.NewRequest("GET", "/", nil).Context()); got != "" {
		t.Errorf("FromCtx on bare context = %q, want empty", got)
	}
}
