package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lumen/internal/api"
	"lumen/internal/api/handlers"
	"lumen/internal/repository"
	"lumen/internal/service"
	"lumen/pkg/auth"
	"lumen/pkg/config"
	"lumen/pkg/logger"

	"go.uber.org/zap"
)

// @title LUMEN API
// @version 1.0
// @description Personal-finance dashboard backend: document upload with simulated extraction, spending analytics, and a rule-based assistant.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting LUMEN service")

	// Repositories (session-local, in-memory)
	userRepo := repository.NewUserRepository(appLogger)
	docRepo := repository.NewDocumentRepository(appLogger)
	feedRepo := repository.NewFeedRepository(appLogger)

	// JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	extractionService := service.NewExtractionService(service.NewRandomSelector(), cfg.Extraction.Delay, appLogger)
	docService := service.NewDocumentService(docRepo, feedRepo, extractionService, appLogger)
	assistantService := service.NewAssistantService(appLogger)
	dashService := service.NewDashboardService(feedRepo, appLogger)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	docHandler := handlers.NewDocumentHandler(docService, appLogger)
	chatHandler := handlers.NewChatHandler(docService, assistantService, appLogger)
	dashHandler := handlers.NewDashboardHandler(dashService, appLogger)

	app := api.SetupRouter(authHandler, docHandler, chatHandler, dashHandler, jwtManager, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
