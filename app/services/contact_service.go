package services

import (
	"fmt"
	"strings"

	"github.com/hyrahs/shopstore-api/config"
	"github.com/hyrahs/shopstore-api/pkg/mail"
)

// Sender delivers a contact-form email. Satisfied by mail.Send; tests
// substitute a recording fake.
type Sender func(to, replyTo, subject, body string) error

// ContactService forwards contact-form submissions to the shop inbox.
type ContactService struct {
	send Sender
}

func NewContactService(send Sender) *ContactService {
	if send == nil {
		send = mail.Send
	}
	return &ContactService{send: send}
}

// Submit validates the form and sends the message. The receiver address
// falls back to the SMTP account itself when RECEIVER_EMAIL is unset.
func (s *ContactService) Submit(name, email, message string) error {
	errs := map[string]string{}
	if strings.TrimSpace(name) == "" {
		errs["name"] = "The name field is required."
	}
	if strings.TrimSpace(email) == "" {
		errs["email"] = "The email field is required."
	}
	if strings.TrimSpace(message) == "" {
		errs["message"] = "The message field is required."
	}
	if len(errs) > 0 {
		return NewValidationError(errs)
	}

	to := config.Get("RECEIVER_EMAIL", config.Get("MAIL_USERNAME", ""))
	body := fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s\n", name, email, message)

	if err := s.send(to, email, "New Contact Form Submission", body); err != nil {
		return fmt.Errorf("contact: send mail: %w", err)
	}
	return nil
}
