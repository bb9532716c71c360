package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hyrahs/shopstore-api/app/repositories"
	"github.com/hyrahs/shopstore-api/config"
	"github.com/hyrahs/shopstore-api/database/seeders"
	"github.com/hyrahs/shopstore-api/pkg/database"
)

// bootDB loads config and opens the MongoDB connection.
func bootDB() error {
	if err := config.Load(); err != nil {
		return err
	}
	return database.Connect()
}

// shopstore db:indexes — create the MongoDB indexes.
var indexesCmd = &cobra.Command{
	Use:   "db:indexes",
	Short: "Create the MongoDB indexes the API relies on",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		defer disconnect()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		fmt.Println("Creating indexes…")
		if err := database.EnsureIndexes(ctx); err != nil {
			return err
		}
		fmt.Println("Indexes created.")
		return nil
	},
}

// shopstore seed:admin — create the admin account from ADMIN_* config.
var seedAdminCmd = &cobra.Command{
	Use:   "seed:admin",
	Short: "Create the administrative account from ADMIN_EMAIL / ADMIN_PASSWORD",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		defer disconnect()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return seeders.SeedAdmin(ctx, repositories.NewUserRepository(database.DB()))
	},
}

func disconnect() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = database.Disconnect(ctx)
}
