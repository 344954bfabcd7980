package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tasktracker/internal/api/controller"
	"tasktracker/internal/api/middleware"
	"tasktracker/internal/api/repository"
	"tasktracker/internal/api/service"
	"tasktracker/internal/auth"
	"tasktracker/internal/config"
	"tasktracker/internal/db"
	"tasktracker/internal/logger"
	"tasktracker/internal/server"
	"tasktracker/internal/telemetry"
)

func main() {
	ctx := context.Background()

	// Configuration first: the server must not come up without a token secret.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel()
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	logger.Init(slog.LevelInfo)

	// Initialize SQLite DB
	database, err := db.Connect(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to initialize sqlite db: %v", err)
	}
	defer database.Close()

	accessLog, err := middleware.NewAccessLogger(cfg.ErrorLogPath)
	if err != nil {
		log.Fatalf("failed to open access log: %v", err)
	}
	defer accessLog.Close()

	// Create repositories
	userRepo := repository.NewUserRepository(database)
	taskRepo := repository.NewTaskRepository(database)

	// Create services
	tokens := auth.NewTokenManager(cfg.TokenSecret, cfg.TokenLifetime)
	userService := service.NewUserService(userRepo, tokens)
	taskService := service.NewTaskService(taskRepo)

	// Create controllers
	userController := controller.NewUserController(userService)
	taskController := controller.NewTaskController(taskService)

	// Create the Gin-based server
	srv := server.NewServer(userController, taskController, userService, accessLog)

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Engine(),
	}

	go func() {
		slog.Info("http server started", "addr", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-stop

	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	slog.Info("server exiting")
}
