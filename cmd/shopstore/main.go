package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shopstore",
	Short: "ShopStore API — storefront backend CLI",
	Long:  "ShopStore API serves the storefront: accounts, catalogue, orders, and contact form.",
}

func init() {
	// Server
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)

	// Database
	rootCmd.AddCommand(indexesCmd)
	rootCmd.AddCommand(seedAdminCmd)
}
