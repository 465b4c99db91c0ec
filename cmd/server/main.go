package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parkwise/internal/config"
	"parkwise/internal/handlers"
	"parkwise/internal/middleware"
	"parkwise/internal/repositories/mongodb"
	"parkwise/internal/services"
	"parkwise/internal/utils"
	"parkwise/pkg/cache"
	"parkwise/pkg/database"
	"parkwise/pkg/logger"
	"parkwise/pkg/websocket"
	"parkwise/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: cfg.App.LogFormat,
		Output: "stdout",
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Close()

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.EnsureIndexes(indexCtx); err != nil {
		cancelIndexes()
		appLogger.Fatalf("Failed to ensure indexes: %v", err)
	}
	cancelIndexes()

	redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		IdleTimeout:  cfg.Redis.IdleTimeout,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		appLogger.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisCache.Close()

	// Repositories
	locationRepo := mongodb.NewLocationRepository(db.Database)
	siteRepo := mongodb.NewSiteRepository(db.Database)
	deviceRepo := mongodb.NewDeviceRepository(db.Database, redisCache)
	categoryRepo := mongodb.NewVehicleCategoryRepository(db.Database)
	tariffRepo := mongodb.NewTariffRepository(db.Database, redisCache)
	overnightRepo := mongodb.NewOvernightPolicyRepository(db.Database)
	transactionRepo := mongodb.NewTransactionRepository(db.Database)
	entryRepo := mongodb.NewVehicleEntryRepository(db.Database)
	userRepo := mongodb.NewUserRepository(db.Database)

	// WebSocket hub for live dashboard updates; NewHandler starts the hub loop.
	wsHandler := websocket.NewHandler()

	// Services
	catalogService := services.NewCatalogService(deviceRepo, siteRepo, locationRepo, categoryRepo, tariffRepo, overnightRepo, redisCache, appLogger)
	feeService := services.NewFeeService(deviceRepo, siteRepo, catalogService, appLogger)
	sessionService := services.NewSessionService(entryRepo, categoryRepo, deviceRepo, siteRepo, locationRepo, feeService, wsHandler, cfg.Security.PasswordSecret, appLogger)
	transactionService := services.NewTransactionService(transactionRepo, deviceRepo, appLogger)
	reportService := services.NewReportService(transactionRepo, entryRepo, locationRepo, siteRepo, deviceRepo, appLogger)
	authService := services.NewAuthService(userRepo, cfg.Security.JWTSecret, appLogger)

	// Router
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(appLogger))

	v1 := router.Group("/api/v1")
	routes.SetupRoutes(v1, &routes.Handlers{
		Auth:            handlers.NewAuthHandler(authService),
		Location:        handlers.NewLocationHandler(locationRepo),
		Site:            handlers.NewSiteHandler(siteRepo, locationRepo),
		Device:          handlers.NewDeviceHandler(deviceRepo, siteRepo, catalogService),
		VehicleCategory: handlers.NewVehicleCategoryHandler(categoryRepo),
		Tariff:          handlers.NewTariffHandler(tariffRepo),
		OvernightPolicy: handlers.NewOvernightPolicyHandler(overnightRepo, categoryRepo),
		Session:         handlers.NewSessionHandler(sessionService),
		Transaction:     handlers.NewTransactionHandler(transactionService),
		Report:          handlers.NewReportHandler(reportService),
	}, cfg.Security.JWTSecret)

	router.GET(cfg.WebSocket.Path, middleware.AuthRequired(cfg.Security.JWTSecret), wsHandler.HandleWebSocket)

	router.GET("/health", func(c *gin.Context) {
		status := http.StatusOK
		checks := gin.H{"mongodb": "up", "redis": "up"}
		if err := db.Ping(); err != nil {
			checks["mongodb"] = "down"
			status = http.StatusServiceUnavailable
		}
		if err := redisCache.Ping(c.Request.Context()); err != nil {
			checks["redis"] = "down"
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{
			"status":  utils.StatusSuccess,
			"app":     cfg.App.Name,
			"version": cfg.App.Version,
			"checks":  checks,
		})
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		appLogger.Infof("Starting %s on port %d", cfg.App.Name, cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("Forced shutdown: %v", err)
	}
}
