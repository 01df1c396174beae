package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"complaints_backend_echo/internal/handlers"
	appMiddleware "complaints_backend_echo/internal/middleware"
	"complaints_backend_echo/internal/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Initialize Firebase
	credPath := os.Getenv("FIREBASE_CREDENTIALS_PATH")
	if credPath == "" {
		credPath = "./firebase-service-account.json"
	}

	authClient, err := services.InitFirebase(credPath)
	if err != nil {
		log.Printf("Warning: Firebase initialization failed: %v", err)
		log.Println("Auth features will not work until valid credentials are provided")
	}

	// Initialize Database
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	db, err := services.InitDB(databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := services.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Redis is optional; without it listings are served uncached
	var cache *services.RedisCache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		cache, err = services.NewRedisCache(redisURL)
		if err != nil {
			log.Printf("Warning: Redis initialization failed: %v", err)
			cache = nil
		}
	}

	// Receipt storage
	receiptDir := os.Getenv("RECEIPT_DIR")
	if receiptDir == "" {
		receiptDir = "uploads/receipts"
	}
	receipts, err := services.NewReceiptStore(receiptDir)
	if err != nil {
		log.Fatalf("Failed to initialize receipt store: %v", err)
	}

	// Core services
	notifications := services.NewNotificationService(db)
	settings := services.NewSettingsService(db)
	payments := services.NewPaymentService(db, notifications)
	engine := services.NewSubscriptionService(db, notifications, settings)
	methods := services.NewPaymentMethodService(db)

	// Create Echo instance
	e := echo.New()
	e.HTTPErrorHandler = appMiddleware.CustomErrorHandler

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Handlers
	authHandler := handlers.NewAuthHandler(authClient)
	paymentHandler := handlers.NewPaymentHandler(payments, engine, receipts)
	subscriptionHandler := handlers.NewSubscriptionHandler(engine, payments, settings)
	methodHandler := handlers.NewPaymentMethodHandler(methods, cache)
	notificationHandler := handlers.NewNotificationHandler(notifications)

	// Public routes
	e.POST("/auth/login", authHandler.HandleLogin)
	e.POST("/auth/logout", authHandler.HandleLogout)
	e.GET("/payment-methods", methodHandler.PublicList)
	e.GET("/subscription-price", subscriptionHandler.Price)

	// Authenticated routes
	protected := e.Group("")
	protected.Use(appMiddleware.RequireAuth(authClient, db))
	protected.GET("/subscription/status", subscriptionHandler.Status)
	protected.POST("/payment/submit", paymentHandler.Submit)
	protected.GET("/payment/receipt/:filename", paymentHandler.GetReceipt)
	protected.GET("/notifications", notificationHandler.List)
	protected.POST("/notifications/:id/read", notificationHandler.MarkRead)

	// Reviewer routes
	admin := protected.Group("/admin")
	admin.GET("/payments", paymentHandler.AdminList, appMiddleware.RequirePermission(services.ActionReviewPayments))
	admin.POST("/payment/:id/approve", paymentHandler.Approve, appMiddleware.RequirePermission(services.ActionReviewPayments))
	admin.POST("/payment/:id/reject", paymentHandler.Reject, appMiddleware.RequirePermission(services.ActionReviewPayments))

	admin.GET("/payment-methods", methodHandler.AdminList, appMiddleware.RequirePermission(services.ActionManagePaymentMethods))
	admin.POST("/payment-methods", methodHandler.Create, appMiddleware.RequirePermission(services.ActionManagePaymentMethods))
	admin.PUT("/payment-methods/:id", methodHandler.Update, appMiddleware.RequirePermission(services.ActionManagePaymentMethods))
	admin.DELETE("/payment-methods/:id", methodHandler.Delete, appMiddleware.RequirePermission(services.ActionManagePaymentMethods))

	admin.GET("/settings", subscriptionHandler.GetSettings, appMiddleware.RequirePermission(services.ActionManageSettings))
	admin.PUT("/settings", subscriptionHandler.UpdateSettings, appMiddleware.RequirePermission(services.ActionManageSettings))

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
