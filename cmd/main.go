package main

import (
	"tenant-ledger/internal/attachment"
	"tenant-ledger/internal/handler"
	mid "tenant-ledger/internal/middleware"
	"tenant-ledger/pkg/config"
	"tenant-ledger/pkg/database"
	"tenant-ledger/pkg/logger"
	"tenant-ledger/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting tenant-ledger",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port),
		zap.String("db_path", appConfig.DB.Path))

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	if err := database.InitDB(appConfig); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database opened and migrated")

	// Initialize attachment storage directories
	store := attachment.NewStore(appConfig.Storage.PhotoDir, appConfig.Storage.DocumentDir)
	if err := store.Init(); err != nil {
		log.Fatal("Failed to initialize attachment storage", zap.Error(err))
	}
	handler.Init(store)
	log.Info("Attachment storage ready",
		zap.String("photo_dir", appConfig.Storage.PhotoDir),
		zap.String("docs_dir", appConfig.Storage.DocumentDir))

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)
	e.Use(logger.Middleware(log))

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", handler.Health)

	// Tenant API routes
	tenantAPI := e.Group("/api/tenants")
	tenantAPI.GET("", handler.ListTenants)
	tenantAPI.GET("/:id", handler.GetTenant)
	tenantAPI.POST("", handler.CreateTenant)
	tenantAPI.PUT("/:id", handler.UpdateTenant)
	tenantAPI.POST("/:id/active", handler.SetTenantStatus)

	// Rent payment API routes
	paymentAPI := e.Group("/api/payments")
	paymentAPI.GET("", handler.ListPayments)
	paymentAPI.POST("", handler.CreatePayment)

	// Document API routes
	documentAPI := e.Group("/api/documents")
	documentAPI.GET("", handler.ListDocuments)
	documentAPI.POST("", handler.CreateDocument)

	// Property API routes
	propertyAPI := e.Group("/api/properties")
	propertyAPI.GET("", handler.ListProperties)
	propertyAPI.POST("", handler.CreateProperty)

	// Standalone attachment storage
	e.POST("/api/attachments", handler.StoreAttachment)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
