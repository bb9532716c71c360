package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hyrahs/shopstore-api/app/controllers"
	"github.com/hyrahs/shopstore-api/app/routes"
	"github.com/hyrahs/shopstore-api/config"
	"github.com/hyrahs/shopstore-api/internal/server"
	"github.com/hyrahs/shopstore-api/pkg/auth"
	"github.com/hyrahs/shopstore-api/pkg/router"
)

// shopstore serve — start the HTTP server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := server.New()
		if err != nil {
			return err
		}
		return s.Run()
	},
}

// shopstore route:list — print all registered routes.
// Builds the route table without touching MongoDB or Redis; the handlers
// are registered but never invoked.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		r := router.New()
		routes.RegisterAPI(r, &routes.Controllers{
			Auth:    controllers.NewAuthController(nil),
			Orders:  controllers.NewOrderController(nil),
			Product: controllers.NewProductController(nil),
			Contact: controllers.NewContactController(nil),
			Tokens:  auth.NewTokenService(config.JWTSecret()),
		})

		infos := r.Routes()
		if len(infos) == 0 {
			fmt.Println("No named routes registered.")
			return nil
		}

		sort.Slice(infos, func(i, j int) bool {
			if infos[i].Path != infos[j].Path {
				return infos[i].Path < infos[j].Path
			}
			return infos[i].Method < infos[j].Method
		})

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, ri := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}
