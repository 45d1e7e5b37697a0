package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/UbiShip-Limited/bItS-build-sub008/internal/config"
	"github.com/UbiShip-Limited/bItS-build-sub008/internal/logger"
	"github.com/UbiShip-Limited/bItS-build-sub008/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		// Fine in production, where variables are set directly in the
		// environment.
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger.InitLogger(cfg.Stage)
	defer logger.Sync()

	if cfg.Stage == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	if err := server.InitializeHandlers(cfg); err != nil {
		logger.Fatal("Failed to initialize handlers", zap.Error(err))
	}
	server.InitializeRoutes(router, cfg)
	server.StartBackground(cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Forced shutdown", zap.Error(err))
	}

	server.Shutdown()
}
