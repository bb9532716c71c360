// Package routes defines the HTTP route table.
package routes

import (
	"net/http"

	"github.com/hyrahs/shopstore-api/app/controllers"
	"github.com/hyrahs/shopstore-api/app/models"
	"github.com/hyrahs/shopstore-api/config"
	"github.com/hyrahs/shopstore-api/pkg/auth"
	"github.com/hyrahs/shopstore-api/pkg/metrics"
	"github.com/hyrahs/shopstore-api/pkg/middleware"
	"github.com/hyrahs/shopstore-api/pkg/rbac"
	"github.com/hyrahs/shopstore-api/pkg/router"
)

// Controllers bundles the handlers the route table mounts.
type Controllers struct {
	Auth    *controllers.AuthController
	Orders  *controllers.OrderController
	Product *controllers.ProductController
	Contact *controllers.ContactController
	Tokens  *auth.TokenService
}

// RegisterAPI mounts every route on r.
//
// Middleware layering per route group:
//
//	public           (none)
//	authenticated    Auth
//	admin            Auth → HasRole("admin")
func RegisterAPI(r *router.Router, c *Controllers) {
	authed := middleware.Auth(c.Tokens)
	adminOnly := rbac.HasRole(models.RoleAdmin)

	api := r.Group("/api")

	// Accounts and sessions.
	authGroup := api.Group("/auth")
	authGroup.Post("/signup", "auth.signup", c.Auth.Signup)
	authGroup.Post("/login", "auth.login", c.Auth.Login)
	authGroup.Get("/profile", "auth.profile", c.Auth.Profile, authed)

	// Orders. Checkout and phone-number tracking are public so guests can
	// order and follow up without an account; management routes are admin.
	orders := api.Group("/orders")
	orders.Post("", "orders.place", c.Orders.Place)
	orders.Get("/user/{phone}", "orders.by_phone", c.Orders.ByPhone)
	orders.Get("/mine", "orders.mine", c.Orders.Mine, authed)

	ordersAdmin := orders.Group("", authed, adminOnly)
	ordersAdmin.Get("", "orders.list", c.Orders.List)
	ordersAdmin.Get("/{id}", "orders.get", c.Orders.Get)
	ordersAdmin.Put("/{id}/status", "orders.update_status", c.Orders.UpdateStatus)
	ordersAdmin.Delete("/{id}", "orders.delete", c.Orders.Delete)

	// Catalogue: public reads, admin mutations.
	products := api.Group("/products")
	products.Get("", "products.list", c.Product.List)
	products.Get("/{id}", "products.get", c.Product.Get)

	productsAdmin := products.Group("", authed, adminOnly)
	productsAdmin.Post("", "products.create", c.Product.Create)
	productsAdmin.Put("/{id}", "products.update_price", c.Product.UpdatePrice)
	productsAdmin.Delete("/{id}", "products.delete", c.Product.Delete)

	// Contact form.
	api.Post("/contact", "contact.submit", c.Contact.Submit)

	// Operational endpoints.
	r.Get("/health", "health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK")) //nolint:errcheck
	})
	r.HandleFunc("/metrics", metrics.Handler())

	// Uploaded product images.
	r.Static("/assets", config.StorageLocalRoot())
}
