package routes

import (
	"phonestore-api/internal/adapters/http/handlers"
	"phonestore-api/internal/adapters/http/middleware"
	"phonestore-api/internal/adapters/persistence/repositories"
	"phonestore-api/internal/config"
	"phonestore-api/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup wires repositories, services and handlers to the HTTP routes
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Repositories
	userRepo := repositories.NewUserRepository(db)
	phoneRepo := repositories.NewPhoneRepository(db)
	brandRepo := repositories.NewBrandRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, cfg)
	userService := services.NewUserService(userRepo)
	phoneService := services.NewPhoneService(phoneRepo, brandRepo)
	brandService := services.NewBrandService(brandRepo)
	orderService := services.NewOrderService(orderRepo, phoneRepo, userRepo)

	// Handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	phoneHandler := handlers.NewPhoneHandler(phoneService)
	brandHandler := handlers.NewBrandHandler(brandService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// Health and docs
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Every request below may carry a bearer token. Requests without one
	// pass through anonymously; role checks happen per route group.
	app.Use(middleware.Guard(cfg))

	api := app.Group("/api")
	v1 := api.Group("/v1")
	v1.Get("/", healthHandler.APIInfo)

	// Auth
	auth := v1.Group("/auth", middleware.AuthRateLimiter())
	auth.Post("/register", authHandler.Register)
	auth.Post("/token", authHandler.Login)
	auth.Post("/token/email", authHandler.LoginWithEmail)

	// Phones: public reads, admin writes
	phones := v1.Group("/phones")
	phones.Get("/", phoneHandler.ListPhones)
	phones.Get("/:id", phoneHandler.GetPhone)
	phones.Post("/", middleware.RequireAdmin(), phoneHandler.CreatePhone)
	phones.Put("/:id", middleware.RequireAdmin(), phoneHandler.UpdatePhone)
	phones.Delete("/:id", middleware.RequireAdmin(), phoneHandler.DeletePhone)
	phones.Post("/:id/picture", middleware.RequireAdmin(), phoneHandler.UploadPicture)

	// Brands: public reads, admin writes
	brands := v1.Group("/brands")
	brands.Get("/", brandHandler.ListBrands)
	brands.Get("/:id", brandHandler.GetBrand)
	brands.Post("/", middleware.RequireAdmin(), brandHandler.CreateBrand)
	brands.Put("/:id", middleware.RequireAdmin(), brandHandler.UpdateBrand)
	brands.Delete("/:id", middleware.RequireAdmin(), brandHandler.DeleteBrand)

	// Users: ownership enforced in the handlers for username routes
	users := v1.Group("/users")
	users.Get("/", middleware.RequireAdmin(), userHandler.ListUsers)
	users.Get("/search", middleware.RequireAdmin(), userHandler.SearchUsers)
	users.Get("/email/:email", middleware.RequireAdmin(), userHandler.GetUserByEmail)
	users.Get("/username/:username", middleware.RequireAuth(), userHandler.GetUserByUsername)
	users.Put("/username/:username", middleware.RequireAuth(), userHandler.UpdateUser)
	users.Delete("/username/:username", middleware.RequireAuth(), userHandler.DeleteUserByUsername)
	users.Post("/username/:username/picture", middleware.RequireAuth(), userHandler.UploadUserPicture)
	users.Get("/:id", middleware.RequireAdmin(), userHandler.GetUser)
	users.Delete("/:id", middleware.RequireAdmin(), userHandler.DeleteUser)

	// Profile: always the authenticated user
	profile := v1.Group("/profile", middleware.RequireAuth())
	profile.Get("/", userHandler.GetProfile)
	profile.Put("/", userHandler.UpdateProfile)
	profile.Put("/password", userHandler.ChangePassword)
	profile.Post("/picture", userHandler.UploadProfilePicture)

	// Orders
	orders := v1.Group("/orders", middleware.RequireAuth())
	orders.Post("/", orderHandler.CreateOrder)
	orders.Get("/my", orderHandler.MyOrders)
	orders.Get("/", middleware.RequireAdmin(), orderHandler.ListOrders)
	orders.Get("/:id", orderHandler.GetOrder)
	orders.Put("/:id/status", middleware.RequireAdmin(), orderHandler.UpdateOrderStatus)
}
