package main

import (
	"log"

	"ossutracker/config"
	"ossutracker/database"
	"ossutracker/middleware"
	"ossutracker/repository"
	"ossutracker/routes"
	"ossutracker/seed"
	"ossutracker/services"
	"ossutracker/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	store := repository.NewGormStore(db)

	// Seed the catalog; re-running is a no-op for existing records
	catalog := seed.Courses()
	result, err := services.SyncCatalog(store, catalog)
	if err != nil {
		log.Fatalf("Error syncing catalog: %v", err)
	}
	logger.Printf("catalog synced: %d new of %d courses", result.SyncedNew, result.TotalCourses)

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, store, catalog, seed.Curricula())

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
