package main

import (
	"log"

	"github.com/anonto42/mini-insta/backend/internal/cache"
	"github.com/anonto42/mini-insta/backend/internal/router"
	"github.com/anonto42/mini-insta/backend/pkg/config"
	"github.com/anonto42/mini-insta/backend/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB() // Ensure database connection is closed when main exits

	// Feed cache; the service runs without it if Redis is unreachable
	feedCache := cache.New(cfg.RedisAddr)

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, feedCache)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
