package main

// @title c2ccombos API
// @version 1.0.0
// @description Сервис поиска комбинаций маршрутов и вейпоинтов каталога camptocamp.
// @description
// @description Основные возможности:
// @description - Поиск маршрутов для лазания рядом с точками старта парапланов
// @description - Постраничный доступ к listing-ресурсам каталога (маршруты, вейпоинты)
// @description - Фильтрация по активностям, рейтингам и ориентациям

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/c2ccombos/docs"
	"github.com/c2ccombos/internal/config"
	httpDelivery "github.com/c2ccombos/internal/delivery/http"
	"github.com/c2ccombos/internal/delivery/http/handler"
	"github.com/c2ccombos/internal/infrastructure/c2c"
	"github.com/c2ccombos/internal/pkg/logger"
	"github.com/c2ccombos/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting c2ccombos")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("catalog_url", cfg.Catalog.BaseURL),
	)

	// 3. Initialize catalog client
	catalogRepo := c2c.NewCatalogClient(&cfg.Catalog, log)
	log.Info("Catalog client initialized")

	// 4. Initialize use cases
	searchUC := usecase.NewSearchUseCase(catalogRepo, log, cfg.Catalog.SiteURL, cfg.Search)
	log.Info("Use cases initialized")

	// 5. Initialize HTTP handlers
	searchHandler := handler.NewSearchHandler(searchUC, log)
	log.Info("HTTP handlers initialized")

	// 6. Initialize HTTP server
	server := httpDelivery.NewServer(cfg, log, searchHandler)
	log.Info("HTTP server initialized")

	// 7. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
