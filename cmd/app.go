/*
Package cmd bootstraps the application: configuration, logging, persistence
selection, dependency wiring and graceful shutdown.
*/
package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"landlisting/api"
	"landlisting/api/health"
	landctrl "landlisting/api/land"
	landapp "landlisting/application/land"
	"landlisting/config"
	"landlisting/domain/land"
	"landlisting/infrastructure/persistence/mocks"
	"landlisting/infrastructure/persistence/mysql"
	"landlisting/pkg/logger"

	"go.uber.org/zap"
)

// App is the assembled application.
type App struct {
	config *config.Config
	router *api.Router
	server *http.Server
}

// NewApp loads configuration, initializes logging and wires every layer.
func NewApp(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Log, cfg.App.Env); err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	repo, sqlDB, err := buildRepository(cfg)
	if err != nil {
		return nil, err
	}

	landService := landapp.NewApplicationService(repo)

	healthController := health.NewController(cfg, sqlDB)
	landController := landctrl.NewController(landService)

	router := api.NewRouter(cfg, healthController, landController)
	router.SetupRoutes()

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router.GetEngine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return &App{
		config: cfg,
		router: router,
		server: server,
	}, nil
}

// buildRepository selects the persistence layer from configuration.
// Returns the raw *sql.DB for health checks, nil for the mock.
func buildRepository(cfg *config.Config) (land.Repository, *sql.DB, error) {
	switch cfg.Database.Type {
	case "mysql":
		logger.Info("Using MySQL persistence layer")

		mysqlCfg := NewMySQLConfig(cfg)
		db, err := mysqlCfg.Connect()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to MySQL: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
		}
		return mysql.NewLandRepository(db), sqlDB, nil

	default:
		logger.Info("Using in-memory persistence layer")

		repo := mocks.NewMockLandRepository()
		if cfg.IsDevelopment() {
			mocks.SeedSampleData(repo)
		}
		return repo, nil, nil
	}
}

// Run starts the HTTP server and blocks until shutdown completes.
func (a *App) Run() error {
	go func() {
		logger.Info("Server starting",
			zap.String("addr", a.server.Addr),
			zap.String("env", a.config.App.Env))

		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", zap.Error(err))
		return err
	}

	logger.Info("Server stopped")
	return logger.Sync()
}
