package controllers

import (
	"errors"
	"net/http"

	"github.com/hyrahs/shopstore-api/app/services"
	"github.com/hyrahs/shopstore-api/pkg/bind"
	"github.com/hyrahs/shopstore-api/pkg/logger"
	"github.com/hyrahs/shopstore-api/pkg/response"
)

// ContactController handles the contact-form route.
type ContactController struct {
	contact *services.ContactService
}

func NewContactController(contact *services.ContactService) *ContactController {
	return &ContactController{contact: contact}
}

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// Submit forwards a contact-form submission to the shop inbox.
// POST /api/contact
func (c *ContactController) Submit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	errs, err := bind.JSON(r, &req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := c.contact.Submit(req.Name, req.Email, req.Message); err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			response.ValidationError(w, vErr.Fields)
			return
		}
		logger.WithCtx(r.Context()).Error("contact mail failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to send message. Please try again later.")
		return
	}

	response.Message(w, "Message sent successfully")
}
