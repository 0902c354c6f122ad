package routes

import (
	"embox/internal/adapters/http/handlers"
	"embox/internal/adapters/http/middleware"
	"embox/internal/adapters/persistence/repositories"
	"embox/internal/config"
	"embox/internal/core/membership"
	"embox/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)
	txnRepo := repositories.NewTransactionRepository(db)

	// Initialize services
	calculator := membership.NewCalculator(cfg.Billing.Strategy)
	authService := services.NewAuthService(userRepo, cfg)
	customerService := services.NewCustomerService(customerRepo, calculator)
	txnService := services.NewTransactionService(txnRepo, customerRepo)
	reportService := services.NewReportService(txnRepo, customerRepo)
	dashboardService := services.NewDashboardService(customerRepo, txnRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, cfg)
	authHandler := handlers.NewAuthHandler(authService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	txnHandler := handlers.NewTransactionHandler(txnService)
	reportHandler := handlers.NewReportHandler(reportService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")

	// Auth routes (public, rate limited)
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/register", middleware.AuthRateLimiter(), authHandler.Register)
	authRoutes.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	authRoutes.Post("/forgot-password", middleware.StrictRateLimiter(), authHandler.ForgotPassword)
	authRoutes.Post("/reset-password", middleware.StrictRateLimiter(), authHandler.ResetPassword)
	authRoutes.Get("/me", middleware.AuthMiddleware(cfg), authHandler.Me)

	// Customer routes (authenticated; writes are admin only)
	customerRoutes := apiV1.Group("/customers")
	customerRoutes.Use(middleware.AuthMiddleware(cfg))
	customerRoutes.Get("/", customerHandler.List)
	customerRoutes.Get("/due-soon", customerHandler.ListDueSoon)
	customerRoutes.Get("/:id", customerHandler.GetByID)
	customerRoutes.Post("/", middleware.AdminOnly(), customerHandler.Create)
	customerRoutes.Put("/:id/inactivate", middleware.AdminOnly(), customerHandler.Inactivate)
	customerRoutes.Put("/:id/inscription-date", middleware.AdminOnly(), customerHandler.Renew)

	// Transaction routes (authenticated; writes are admin only)
	txnRoutes := apiV1.Group("/transactions")
	txnRoutes.Use(middleware.AuthMiddleware(cfg))
	txnRoutes.Get("/", txnHandler.List)
	txnRoutes.Get("/summary", txnHandler.Summary)
	txnRoutes.Get("/:id", txnHandler.GetByID)
	txnRoutes.Post("/", middleware.AdminOnly(), txnHandler.Create)

	// Report routes (admin only)
	reportRoutes := apiV1.Group("/reports")
	reportRoutes.Use(middleware.AuthMiddleware(cfg))
	reportRoutes.Use(middleware.AdminOnly())
	reportRoutes.Get("/financial", reportHandler.Financial)
	reportRoutes.Get("/members", reportHandler.Members)

	// Dashboard routes (authenticated)
	dashboardRoutes := apiV1.Group("/dashboard")
	dashboardRoutes.Use(middleware.AuthMiddleware(cfg))
	dashboardRoutes.Get("/", dashboardHandler.GetDashboard)
}
