// Package seeders populates MongoDB with initial records.
package seeders

import (
	"context"
	"errors"
	"fmt"

	"github.com/hyrahs/shopstore-api/app/models"
	"github.com/hyrahs/shopstore-api/app/repositories"
	"github.com/hyrahs/shopstore-api/config"
	"github.com/hyrahs/shopstore-api/pkg/auth"
	"github.com/hyrahs/shopstore-api/pkg/logger"
)

// ErrNoAdminConfig is returned when ADMIN_EMAIL or ADMIN_PASSWORD is missing.
var ErrNoAdminConfig = errors.New("seeders: ADMIN_EMAIL and ADMIN_PASSWORD must be set")

// SeedAdmin creates the administrative account from ADMIN_* configuration.
// Re-running against an existing admin email is a no-op.
func SeedAdmin(ctx context.Context, users *repositories.UserRepository) error {
	email := config.Get("ADMIN_EMAIL", "")
	password := config.Get("ADMIN_PASSWORD", "")
	if email == "" || password == "" {
		return ErrNoAdminConfig
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("seeders: hash admin password: %w", err)
	}

	admin := models.User{
		Name:     config.Get("ADMIN_NAME", "Administrator"),
		Email:    models.NormalizeEmail(email),
		Password: hashed,
		Role:     models.RoleAdmin,
	}

	err = users.Create(ctx, &admin)
	if errors.Is(err, repositories.ErrDuplicateKey) {
		logger.Info("admin account already exists", "email", admin.Email)
		return nil
	}
	if err != nil {
		return fmt.Errorf("seeders: create admin: %w", err)
	}

	logger.Info("admin account created", "email", admin.Email)
	return nil
}
