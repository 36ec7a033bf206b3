package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/solarline/pos-gateway/internal/application/service"
	"github.com/solarline/pos-gateway/internal/config"
	"github.com/solarline/pos-gateway/internal/infrastructure/database"
	"github.com/solarline/pos-gateway/internal/infrastructure/repository"
	"github.com/solarline/pos-gateway/internal/pdfgen"
	"github.com/solarline/pos-gateway/internal/presentation/http/handler"
	"github.com/solarline/pos-gateway/internal/presentation/http/routes"
	"github.com/solarline/pos-gateway/internal/upstream"
	"github.com/solarline/pos-gateway/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Upstream POS API client
	client := upstream.New(cfg.Upstream)

	// PDF rendering
	logos := pdfgen.NewLogoFetcher(cfg.Upstream.MediaBaseURL)
	generator := pdfgen.NewGenerator(logos)

	// Initialize repositories
	sessionRepo := repository.NewSessionRepository(db)
	draftRepo := repository.NewDraftRepository(db)

	// Initialize services
	authService := service.NewAuthService(sessionRepo, client, jwtManager)
	dashboardService := service.NewDashboardService(client)
	invoiceService := service.NewInvoiceService(client, generator, cfg.Invoice)
	receiptService := service.NewReceiptService(client, generator)
	draftService := service.NewDraftService(draftRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Dashboard:    handler.NewDashboardHandler(dashboardService),
		Product:      handler.NewProductHandler(client),
		Category:     handler.NewCategoryHandler(client),
		Customer:     handler.NewCustomerHandler(client),
		Reseller:     handler.NewResellerHandler(client),
		Transaction:  handler.NewTransactionHandler(client),
		Expense:      handler.NewExpenseHandler(client),
		Invoice:      handler.NewInvoiceHandler(invoiceService, client),
		Receipt:      handler.NewReceiptHandler(receiptService, client),
		Notification: handler.NewNotificationHandler(client),
		Collection:   handler.NewCollectionHandler(client),
		Stock:        handler.NewStockHandler(client),
		Settings:     handler.NewSettingsHandler(client),
		Draft:        handler.NewDraftHandler(draftService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:  jwtManager,
		AuthService: authService,
		Cfg:         cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)
	log.Printf("Upstream POS API: %s", cfg.Upstream.BaseURL)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
