package main

import (
	"log"

	"skillaudit/backend/config"
	"skillaudit/backend/middleware"
	"skillaudit/backend/routes"
	"skillaudit/backend/store"
	"skillaudit/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database and document store
	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	st, err := store.NewGormStore(db)
	if err != nil {
		log.Fatalf("Error initializing document store: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Serve stored certificate files
	app.Static("/files", cfg.CertificateDir)

	// Setup routes
	routes.SetupRoutes(app, st, cfg, logger)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
