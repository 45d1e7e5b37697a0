package server

import (
	"context"
	"time"

	"github.com/UbiShip-Limited/bItS-build-sub008/internal/client/square"
	"github.com/UbiShip-Limited/bItS-build-sub008/internal/config"
	"github.com/UbiShip-Limited/bItS-build-sub008/internal/db"
	"github.com/UbiShip-Limited/bItS-build-sub008/internal/handlers"
	"github.com/UbiShip-Limited/bItS-build-sub008/internal/logger"
	"github.com/UbiShip-Limited/bItS-build-sub008/internal/middleware"
	"github.com/UbiShip-Limited/bItS-build-sub008/internal/realtime"
	"github.com/UbiShip-Limited/bItS-build-sub008/internal/services"
	"github.com/UbiShip-Limited/bItS-build-sub008/internal/webhooks"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Handler definitions
var (
	healthHandler   *handlers.HealthHandler
	webhookHandler  *handlers.WebhookHandler
	syncHandler     *handlers.SyncHandler
	realtimeHandler *handlers.RealtimeHandler

	syncService   *services.BookingSyncService
	syncScheduler *services.SyncScheduler

	// Database
	dbPool    *pgxpool.Pool
	dbQueries *db.Queries
)

// InitializeHandlers builds the database pool, services, and HTTP handlers.
func InitializeHandlers(cfg *config.Config) error {
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return err
	}

	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 30

	dbPool, err = pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return err
	}

	dbQueries = db.New(dbPool)

	hub := realtime.NewHub(logger.Log)

	auditService := services.NewAuditService(dbQueries, logger.Log)
	emailService := services.NewEmailService(cfg.Email, logger.Log)
	bookingService := services.NewBookingService(dbQueries, logger.Log, auditService)
	paymentService := services.NewPaymentService(dbQueries, logger.Log, auditService, emailService, hub)

	processor := services.NewWebhookProcessor(paymentService, bookingService, logger.Log)
	router := webhooks.NewRouter(processor, logger.Log)

	squareClient := square.NewClient(cfg.Square.APIURL, cfg.Square.AccessToken, cfg.Square.LocationID)
	syncService = services.NewBookingSyncService(
		squareClient,
		bookingService,
		cfg.Square.SyncLookbehind,
		cfg.Square.SyncLookahead,
		logger.Log,
	)
	syncScheduler = services.NewSyncScheduler(syncService, cfg.Square.SyncInterval, logger.Log)

	healthHandler = handlers.NewHealthHandler()
	webhookHandler = handlers.NewWebhookHandler(cfg.Square, router)
	syncHandler = handlers.NewSyncHandler(syncService)
	realtimeHandler = handlers.NewRealtimeHandler(hub)

	return nil
}

// InitializeRoutes registers middleware and routes on the Gin engine.
func InitializeRoutes(router *gin.Engine, cfg *config.Config) {
	router.Use(configureCORS(cfg))
	router.Use(middleware.CorrelationID())
	router.Use(middleware.NewRateLimiter(100, 200).Middleware())

	router.GET("/health", healthHandler.Health)
	router.GET("/ws/notifications", realtimeHandler.Notifications)

	v1 := router.Group("/api/v1")
	{
		// Square calls this; everything else is dashboard-facing.
		v1.POST("/webhooks/square", webhookHandler.HandleSquareWebhook)

		sync := v1.Group("/square-sync")
		{
			sync.GET("/status", syncHandler.GetStatus)
			sync.POST("/run", syncHandler.RunSync)
		}
	}
}

// StartBackground launches the sync scheduler when the Square integration is
// configured and sync is enabled.
func StartBackground(cfg *config.Config) {
	if !cfg.Square.SyncEnabled {
		logger.Info("Booking sync is disabled by configuration")
		return
	}
	if !cfg.Square.Configured() {
		logger.Warn("Square access token is not configured; booking sync will not run")
		return
	}
	syncScheduler.Start()
}

// Shutdown stops background work and releases the database pool.
func Shutdown() {
	if syncScheduler != nil {
		syncScheduler.Stop()
	}
	if dbPool != nil {
		dbPool.Close()
	}
}

// configureCORS returns the CORS middleware for dashboard origins.
func configureCORS(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	if len(cfg.AllowedOrigins) == 0 {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.CorrelationIDHeader}
	corsConfig.AllowCredentials = true

	if logger.Log != nil {
		logger.Log.Info("CORS configured", zap.Strings("origins", corsConfig.AllowOrigins))
	}

	return cors.New(corsConfig)
}
