package controllers

import (
	"errors"
	"net/http"

	"github.com/hyrahs/shopstore-api/app/services"
	"github.com/hyrahs/shopstore-api/pkg/bind"
	"github.com/hyrahs/shopstore-api/pkg/logger"
	"github.com/hyrahs/shopstore-api/pkg/metrics"
	"github.com/hyrahs/shopstore-api/pkg/middleware"
	"github.com/hyrahs/shopstore-api/pkg/response"
)

// AuthController handles signup, login, and the authenticated profile route.
type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

type signupRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Signup registers a new account and returns a session token.
// POST /api/auth/signup
func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	errs, err := bind.JSON(r, &req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	token, user, err := c.auth.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	metrics.Signups.Inc()
	logger.WithCtx(r.Context()).Info("user signed up", "user_id", user.ID.Hex())

	response.Created(w, map[string]interface{}{
		"token": token,
		"role":  user.Role,
		"user":  user,
	})
}

// Login verifies credentials and returns a session token.
// POST /api/auth/login
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	errs, err := bind.JSON(r, &req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	token, user, err := c.auth.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, services.ErrUserNotFound) {
		response.Unauthorized(w, "User not found")
		return
	}
	if errors.Is(err, services.ErrInvalidPassword) {
		response.Unauthorized(w, "Invalid password")
		return
	}
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"token": token,
		"role":  user.Role,
		"user":  user,
	})
}

// Profile returns the account behind the presented token.
// GET /api/auth/profile (requires bearer token)
func (c *AuthController) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w, "No token provided")
		return
	}

	user, err := c.auth.Profile(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.Success(w, user)
}
