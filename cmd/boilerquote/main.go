package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bher20/boilerquote/internal/api"
	"github.com/bher20/boilerquote/internal/catalog"
	"github.com/bher20/boilerquote/internal/config"
	"github.com/bher20/boilerquote/internal/cron"
	"github.com/bher20/boilerquote/internal/migrate"
)

func main() {
	root := &cobra.Command{
		Use:   "boilerquote",
		Short: "Instant boiler installation quotes for UK homes",
		// Bare `boilerquote` runs the API server, matching how the
		// container images invoke it.
		RunE: func(cmd *cobra.Command, args []string) error {
			return api.Serve()
		},
	}

	root.AddCommand(
		serveCmd(),
		workerCmd(),
		migrateCmd(),
		catalogCmd(),
	)

	if err := root.Execute(); err != nil {
		log.Fatalf("boilerquote: %v", err)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return api.Serve()
		},
	}
}

func workerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Run the catalog refresh worker",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			cfg := config.FromEnv()
			err := cron.Run(ctx, cfg.DBDriver, cfg.DBDSN)
			if err == context.Canceled {
				return nil
			}
			return err
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate [up|down|status]",
		Short: "Run database migrations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromEnv()
			ctx := cmd.Context()
			switch args[0] {
			case "up":
				return migrate.Up(ctx, cfg.DBDriver, cfg.DBDSN)
			case "down":
				return migrate.Down(ctx, cfg.DBDriver, cfg.DBDSN)
			case "status":
				return migrate.Status(ctx, cfg.DBDriver, cfg.DBDSN)
			default:
				return fmt.Errorf("unknown migrate direction %q", args[0])
			}
		},
	}
	return cmd
}

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Catalog maintenance commands",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a catalog JSON file (or the built-in catalog)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.Default()
			if len(args) == 1 {
				var err error
				cat, err = catalog.LoadFile(args[0])
				if err != nil {
					return err
				}
			}
			if err := cat.Validate(); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "catalog ok: %d boilers, %d cylinder sizes\n", len(cat.Boilers), len(cat.CylinderPrices))
			return nil
		},
	})
	return cmd
}
