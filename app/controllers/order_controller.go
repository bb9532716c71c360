package controllers

import (
	"net/http"

	"github.com/hyrahs/shopstore-api/app/services"
	"github.com/hyrahs/shopstore-api/pkg/bind"
	"github.com/hyrahs/shopstore-api/pkg/logger"
	"github.com/hyrahs/shopstore-api/pkg/metrics"
	"github.com/hyrahs/shopstore-api/pkg/middleware"
	"github.com/hyrahs/shopstore-api/pkg/response"
	"github.com/hyrahs/shopstore-api/pkg/router"
)

// OrderController handles checkout and the order lifecycle routes.
type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// Place creates an order from the checkout payload.
// POST /api/orders
func (c *OrderController) Place(w http.ResponseWriter, r *http.Request) {
	var in services.PlaceOrderInput
	if _, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := c.orders.Place(r.Context(), in)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	metrics.OrdersPlaced.Inc()
	logger.WithCtx(r.Context()).Info("order placed",
		"order_id", order.ID.Hex(),
		"total", order.TotalAmount,
	)

	response.Created(w, map[string]interface{}{
		"orderId": order.ID.Hex(),
		"message": "Order placed successfully",
	})
}

// List returns every order, newest first.
// GET /api/orders (admin)
func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	orders, err := c.orders.ListAll(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	response.Success(w, orders)
}

// Get returns a single order by id.
// GET /api/orders/{id} (admin)
func (c *OrderController) Get(w http.ResponseWriter, r *http.Request) {
	order, err := c.orders.Get(r.Context(), router.Param(r, "id"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	response.Success(w, order)
}

// ByPhone returns the orders recorded against a customer phone number.
// Public so guests can track orders without an account.
// GET /api/orders/user/{phone}
func (c *OrderController) ByPhone(w http.ResponseWriter, r *http.Request) {
	orders, err := c.orders.ByPhone(r.Context(), router.Param(r, "phone"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	response.Success(w, orders)
}

// Mine returns the authenticated user's own orders.
// GET /api/orders/mine (requires bearer token)
func (c *OrderController) Mine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w, "No token provided")
		return
	}

	orders, err := c.orders.ByUser(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	response.Success(w, orders)
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateStatus moves an order to a new lifecycle status.
// PUT /api/orders/{id}/status (admin)
func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	errs, err := bind.JSON(r, &req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	order, err := c.orders.UpdateStatus(r.Context(), router.Param(r, "id"), req.Status)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info("order status updated",
		"order_id", order.ID.Hex(),
		"status", order.Status,
	)
	response.Success(w, order)
}

// Delete removes an order.
// DELETE /api/orders/{id} (admin)
func (c *OrderController) Delete(w http.ResponseWriter, r *http.Request) {
	id := router.Param(r, "id")
	if err := c.orders.Delete(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info("order deleted", "order_id", id)
	response.Message(w, "Order deleted successfully")
}
