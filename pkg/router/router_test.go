package router_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/hyrahs/shopstore-api/pkg/router"
)

func TestNamedRoutesAndParams(t *testing.T) {
	r := router.New()

	api := r.Group("/api")
	orders := api.Group("/orders")
	orders.Get("/{id}", "orders.get", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("order " + router.Param(req, "id")))
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/api/orders/abc123", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "order abc123" {
		t.Errorf("body = %q, want URL param extracted", got)
	}

	infos := r.Routes()
	if len(infos) != 1 {
		t.Fatalf("Routes() returned %d entries, want 1", len(infos))
	}
	if infos[0].Name != "orders.get" || infos[0].Path != "/api/orders/{id}" {
		t.Errorf("route info = %+v", infos[0])
	}
}

func TestGroupMiddlewareApplies(t *testing.T) {
	r := router.New()

	var order []string
	tag := func(name string) router.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, req)
			})
		}
	}

	admin := r.Group("/admin", tag("outer"))
	nested := admin.Group("/orders", tag("inner"))
	nested.Get("", "admin.orders", func(w http.ResponseWriter, req *http.Request) {
		order = append(order, "handler")
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/admin/orders", nil))

	if len(order) != 3 || order[0] != "outer" || order[1] != "inner" || order[2] != "handler" {
		t.Errorf("execution order = %v, want [outer inner handler]", order)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	r := router.New()
	r.Post("/api/contact", "contact.submit", func(w http.ResponseWriter, req *http.Request) {})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/api/contact", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestStaticServesFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(dir+"/hello.txt", []byte("static content"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := router.New()
	r.Static("/assets", dir)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/assets/hello.txt", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "static content" {
		t.Errorf("body = %q", rec.Body.String())
	}
}
