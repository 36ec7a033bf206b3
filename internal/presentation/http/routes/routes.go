package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/solarline/pos-gateway/internal/application/service"
	"github.com/solarline/pos-gateway/internal/config"
	"github.com/solarline/pos-gateway/internal/presentation/http/handler"
	"github.com/solarline/pos-gateway/internal/presentation/http/middleware"
	"github.com/solarline/pos-gateway/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth         *handler.AuthHandler
	Dashboard    *handler.DashboardHandler
	Product      *handler.ProductHandler
	Category     *handler.CategoryHandler
	Customer     *handler.CustomerHandler
	Reseller     *handler.ResellerHandler
	Transaction  *handler.TransactionHandler
	Expense      *handler.ExpenseHandler
	Invoice      *handler.InvoiceHandler
	Receipt      *handler.ReceiptHandler
	Notification *handler.NotificationHandler
	Collection   *handler.CollectionHandler
	Stock        *handler.StockHandler
	Settings     *handler.SettingsHandler
	Draft        *handler.DraftHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager  *utils.JWTManager
	AuthService *service.AuthService
	Cfg         *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		v1.POST("/auth/login", h.Auth.Login)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager, deps.AuthService))

		// Per-session rate limiter
		rateLimiter := middleware.NewSessionRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/auth/me", h.Auth.Me)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.Metrics)

	// Business profile
	protected.GET("/settings/business-profile", h.Settings.GetProfile)
	protected.POST("/settings/business-profile", h.Settings.CreateProfile)
	protected.PUT("/settings/business-profile/:id", h.Settings.UpdateProfile)

	registerCatalogRoutes(protected, h)
	registerPartyRoutes(protected, h)
	registerTransactionRoutes(protected, h)
	registerInvoiceRoutes(protected, h)
	registerReceiptRoutes(protected, h)
	registerNotificationRoutes(protected, h)
	registerCollectionRoutes(protected, h)
	registerStockRoutes(protected, h)
	registerDraftRoutes(protected, h)
}

func registerCatalogRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}

	categories := protected.Group("/categories")
	{
		categories.GET("", h.Category.List)
		categories.POST("", h.Category.Create)
		categories.PUT("/:id", h.Category.Update)
		categories.DELETE("/:id", h.Category.Delete)
	}

	expenseCategories := protected.Group("/expense-categories")
	{
		expenseCategories.GET("", h.Category.ListExpenseCategories)
		expenseCategories.POST("", h.Category.CreateExpenseCategory)
	}
}

func registerPartyRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}

	resellers := protected.Group("/resellers")
	{
		resellers.GET("", h.Reseller.List)
		resellers.POST("", h.Reseller.Create)
		resellers.GET("/:id", h.Reseller.Get)
		resellers.PUT("/:id", h.Reseller.Update)
		resellers.DELETE("/:id", h.Reseller.Delete)
	}
}

func registerTransactionRoutes(protected *gin.RouterGroup, h *Handlers) {
	transactions := protected.Group("/transactions")
	{
		transactions.GET("", h.Transaction.List)
		transactions.POST("", h.Transaction.Create)
		transactions.GET("/:id", h.Transaction.Get)
		transactions.PUT("/:id", h.Transaction.Update)
		transactions.DELETE("/:id", h.Transaction.Delete)
	}

	expenses := protected.Group("/expenses")
	{
		expenses.GET("", h.Expense.List)
		expenses.POST("", h.Expense.Create)
		expenses.GET("/:id", h.Expense.Get)
		expenses.PUT("/:id", h.Expense.Update)
		expenses.DELETE("/:id", h.Expense.Delete)
	}
}

func registerInvoiceRoutes(protected *gin.RouterGroup, h *Handlers) {
	invoices := protected.Group("/invoices")
	{
		invoices.GET("", h.Invoice.List)
		invoices.POST("/generate", h.Invoice.Generate)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.GET("/:id/pdf", h.Invoice.Download)
		invoices.GET("/:id/print", h.Invoice.Print)
		invoices.GET("/:id/share", h.Invoice.Share)
		invoices.PATCH("/:id/status", h.Invoice.SetStatus)
		invoices.DELETE("/:id", h.Invoice.Delete)
	}
}

func registerReceiptRoutes(protected *gin.RouterGroup, h *Handlers) {
	receipts := protected.Group("/receipts")
	{
		receipts.GET("", h.Receipt.List)
		receipts.GET("/:id", h.Receipt.Get)
		receipts.GET("/:id/pdf", h.Receipt.Download)
		receipts.GET("/:id/print-data", h.Receipt.PrintData)
		receipts.GET("/:id/share", h.Receipt.Share)
		receipts.DELETE("/:id", h.Receipt.Delete)
	}
}

func registerNotificationRoutes(protected *gin.RouterGroup, h *Handlers) {
	notifications := protected.Group("/notifications")
	{
		notifications.GET("", h.Notification.List)
		notifications.POST("/mark-all-read", h.Notification.MarkAllRead)
		notifications.POST("/test", h.Notification.CreateTest)
		notifications.PATCH("/:id/read", h.Notification.MarkRead)
		notifications.DELETE("/all", h.Notification.DeleteAll)
		notifications.DELETE("/:id", h.Notification.Delete)
	}
}

func registerCollectionRoutes(protected *gin.RouterGroup, h *Handlers) {
	collections := protected.Group("/collections")
	{
		collections.GET("", h.Collection.List)
		collections.POST("", h.Collection.Create)
		collections.GET("/:id", h.Collection.Get)
		collections.PUT("/:id", h.Collection.Update)
		collections.POST("/:id/mark-paid", h.Collection.MarkPaid)
		collections.POST("/:id/mark-collected", h.Collection.MarkCollected)
		collections.DELETE("/:id", h.Collection.Delete)
	}
}

func registerStockRoutes(protected *gin.RouterGroup, h *Handlers) {
	stock := protected.Group("/stock")
	{
		stock.GET("/movements", h.Stock.Movements)
		stock.POST("/movements", h.Stock.CreateMovement)
		stock.GET("/takes", h.Stock.Takes)
		stock.POST("/takes", h.Stock.CreateTake)
		stock.DELETE("/takes/:id", h.Stock.DeleteTake)
	}
}

func registerDraftRoutes(protected *gin.RouterGroup, h *Handlers) {
	drafts := protected.Group("/drafts")
	{
		drafts.GET("", h.Draft.List)
		drafts.PUT("", h.Draft.Save)
		drafts.GET("/:form_key", h.Draft.Load)
		drafts.DELETE("/:form_key", h.Draft.Delete)
	}
}
