package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	dashboardUseCase "github.com/kareem-anwar/finance-ledger/internal/domain/usecase/dashboard"
	transactionUseCase "github.com/kareem-anwar/finance-ledger/internal/domain/usecase/transaction"

	"github.com/kareem-anwar/finance-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/kareem-anwar/finance-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/kareem-anwar/finance-ledger/internal/infrastructure/adapter/database"
	"github.com/kareem-anwar/finance-ledger/internal/infrastructure/adapter/logger"
	"github.com/kareem-anwar/finance-ledger/internal/infrastructure/adapter/repository"
	timeProvider "github.com/kareem-anwar/finance-ledger/internal/infrastructure/adapter/time"
	"github.com/kareem-anwar/finance-ledger/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() {
		_ = appLogger.Flush()
	}()

	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}

	tp := timeProvider.NewRealTimeProvider()

	conn, err := database.NewConnection(dbConfig, appLogger)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() {
		_ = conn.Close()
	}()

	if err := database.Migrate(conn.DB, appLogger); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Repositories
	accountRepo := repository.NewAccountRepository(conn.DB, appLogger)
	categoryRepo := repository.NewCategoryRepository(conn.DB, appLogger)
	userRepo := repository.NewUserRepository(conn.DB, appLogger)
	allocationRepo := repository.NewAllocationRepository(conn.DB, appLogger)
	transactionRepo := repository.NewTransactionRepository(conn.DB, appLogger)

	// Unit of work for transfer atomicity
	uow := database.NewUnitOfWork(conn.DB, appLogger)

	// Use cases
	transactionService := transactionUseCase.NewService(uow, accountRepo, categoryRepo, userRepo, tp, appLogger)
	dashboardService := dashboardUseCase.NewService(accountRepo, allocationRepo, transactionRepo, tp, appLogger)

	// API handlers
	transactionHandler := handler.NewTransactionHandler(transactionService, accountRepo, categoryRepo, appLogger)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, transactionHandler, dashboardHandler, appLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missing []string

	if cfg.Server.Port == 0 {
		missing = append(missing, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missing = append(missing, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missing = append(missing, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missing = append(missing, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		missing = append(missing, "database.host (or FL_DB_HOST environment variable)")
	}
	if cfg.Database.Database == "" {
		missing = append(missing, "database.database (or FL_DB_NAME environment variable)")
	}
	if cfg.Database.Username == "" {
		missing = append(missing, "database.username (or FL_DB_USERNAME environment variable)")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %v", missing)
	}

	return nil
}
