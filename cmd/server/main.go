package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"phonestore-api/internal/adapters/http/middleware"
	"phonestore-api/internal/adapters/http/routes"
	"phonestore-api/internal/adapters/persistence/models"
	"phonestore-api/internal/adapters/persistence/repositories"
	"phonestore-api/internal/config"
	"phonestore-api/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "phonestore-api/docs" // Swagger docs
)

// @title Phone Store API
// @version 1.0
// @description REST backend for a phone e-commerce store.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@phonestore.local

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed admin user and default brands
	if err := config.NewSeeder(db).Run(); err != nil {
		log.Printf("⚠️ Warning: Failed to seed data: %v", err)
	}

	// Cancel stale pending orders (02:30 daily)
	cleanupService := services.NewCleanupService(repositories.NewOrderRepository(db))
	cleanupService.Start()
	defer cleanupService.Stop()

	// Create Fiber app
	app := fiber.New(middleware.FiberConfig(cfg))

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
