package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	internalcli "github.com/themizzi/sauceshop/internal/cli"
	"github.com/themizzi/sauceshop/internal/config"
	"github.com/themizzi/sauceshop/internal/database"
	"github.com/themizzi/sauceshop/internal/handlers"
	"github.com/themizzi/sauceshop/internal/repository"
	"github.com/themizzi/sauceshop/internal/services"
	"github.com/urfave/cli/v2"
)

var version = "0.1.0"

// buildServerDependencies creates all dependencies needed for the server.
// A nil db archives orders in memory.
func buildServerDependencies(db *sql.DB) internalcli.ServerDependencies {
	var orderRepo services.OrderRepository
	if db != nil {
		orderRepo = repository.NewOrderRepository(db)
	} else {
		orderRepo = repository.NewMemoryOrderRepository()
	}
	orderService := services.NewOrderService(orderRepo)

	sessions := handlers.NewSessions()

	return internalcli.ServerDependencies{
		ServerConfig:    config.LoadServerConfig(os.Getenv),
		LoginHandler:    handlers.NewLoginHandler(sessions),
		ProductsHandler: handlers.NewProductsHandler(sessions),
		CartHandler:     handlers.NewCartHandler(sessions),
		CheckoutHandler: handlers.NewCheckoutHandler(sessions, orderService),
		OrderHandler:    handlers.NewOrderHandler(sessions, orderService),
	}
}

// connectArchive opens the Postgres order archive and runs migrations
func connectArchive() (*sql.DB, error) {
	pgConfig, err := config.LoadPostgresConfig(os.Getenv)
	if err != nil {
		return nil, fmt.Errorf("failed to load postgres config: %w", err)
	}

	db, err := database.Connect(pgConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}
	log.Println("Database migrations completed successfully")

	return db, nil
}

// ServeCommand returns the serve command
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the mock storefront API server",
		Action: func(c *cli.Context) error {
			var db *sql.DB
			if config.PostgresEnabled(os.Getenv) {
				var err error
				if db, err = connectArchive(); err != nil {
					return err
				}
				defer db.Close()
				log.Println("Archiving orders in PostgreSQL")
			} else {
				log.Println("POSTGRES_HOSTNAME not set, archiving orders in memory")
			}

			return internalcli.RunServe(buildServerDependencies(db))
		},
	}
}

// MigrateCommand returns the migrate command
func MigrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Create the order archive tables",
		Action: func(c *cli.Context) error {
			db, err := connectArchive()
			if err != nil {
				return err
			}
			return db.Close()
		},
	}
}

// SmokeCommand returns the smoke command
func SmokeCommand() *cli.Command {
	return &cli.Command{
		Name:  "smoke",
		Usage: "Run a login, cart and checkout flow against BASE_URL",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "timeout",
				Value: 10 * time.Second,
				Usage: "overall time limit for the flow",
			},
		},
		Action: func(c *cli.Context) error {
			cfg := config.LoadClientConfig(os.Getenv)

			ctx, cancel := context.WithTimeout(c.Context, c.Duration("timeout"))
			defer cancel()

			result, err := internalcli.RunSmoke(ctx, cfg, nil)
			if err != nil {
				return fmt.Errorf("smoke run against %s failed: %w", cfg.BaseURL, err)
			}

			fmt.Fprintf(c.App.Writer, "order %s placed with %d item(s), total %s\n",
				result.OrderID, len(result.Items), result.Total)
			return nil
		},
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "sauceshop",
		Usage:   "Mock storefront API for end-to-end tests",
		Version: version,
		Commands: []*cli.Command{
			ServeCommand(),
			MigrateCommand(),
			SmokeCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		log.Fatal(err)
	}
}
