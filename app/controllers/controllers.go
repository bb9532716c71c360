// Package controllers contains the HTTP handlers. Handlers decode and
// validate request bodies, call the services, and translate service errors
// into the response envelope per the API's error taxonomy.
package controllers

import (
	"errors"
	"net/http"

	"github.com/hyrahs/shopstore-api/app/services"
	"github.com/hyrahs/shopstore-api/pkg/logger"
	"github.com/hyrahs/shopstore-api/pkg/response"
)

// respondServiceError maps a service failure onto the HTTP taxonomy:
// Validation → 400, Conflict → 409, NotFound → 404, anything else → 500
// (logged server-side, generic message to the caller). Unauthorized cases
// are handled per-handler since their messages differ.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *services.ValidationError
	if errors.As(err, &vErr) {
		response.ValidationError(w, vErr.Fields)
		return
	}

	switch {
	case errors.Is(err, services.ErrEmailTaken):
		response.Conflict(w, "Email already taken")
	case errors.Is(err, services.ErrOrderNotFound):
		response.NotFound(w, "Order not found")
	case errors.Is(err, services.ErrProductNotFound):
		response.NotFound(w, "Product not found")
	case errors.Is(err, services.ErrUserNotFound):
		response.NotFound(w, "User not found")
	default:
		logger.WithCtx(r.Context()).Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		response.Internal(w)
	}
}
