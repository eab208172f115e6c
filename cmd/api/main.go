package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todo-list/config"
	_ "todo-list/docs" // Swagger docs
	"todo-list/internal/httpserver"
	"todo-list/internal/middleware"
	"todo-list/internal/todo/repository/kvslot"
	"todo-list/internal/todo/usecase"
	"todo-list/pkg/kvstore"
	"todo-list/pkg/log"
)

// @title       To-Do List API
// @description Task list with due dates, persisted to a key-value slot.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting To-Do List...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Persistence slot
	kv, err := kvstore.New(kvstore.Config{
		Backend:        cfg.Storage.Backend,
		Path:           cfg.Storage.Path,
		MemoryCapacity: cfg.Storage.MemoryCapacity,
		Logger:         logger,
	})
	if err != nil {
		logger.Error(ctx, "Failed to open storage: ", err)
		return
	}
	defer func() {
		if err := kv.Close(); err != nil {
			logger.Warnf(ctx, "Failed to close storage: %v", err)
		}
	}()
	logger.Infof(ctx, "Storage backend: %s (key %q)", cfg.Storage.Backend, cfg.Storage.Key)

	// 4. Task store
	repo := kvslot.New(kv, cfg.Storage.Key, logger)
	todoUC := usecase.New(repo, logger)
	todoUC.Initialize(ctx)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		TodoUseCase:     todoUC,
		Middleware: middleware.Config{
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RateLimitPerMin:  cfg.RateLimit.RequestsPerMin,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
