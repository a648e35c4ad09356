/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the leave scheduling server. Handles
  configuration, dependency injection, roster seeding, and graceful
  shutdown.

STARTUP SEQUENCE:
  1. Load .env (if present) and parse environment configuration
  2. Initialize SQLite store
  3. Seed the default roster when the employees collection is empty
  4. Create API handler and router
  5. Start server with graceful shutdown

CONFIGURATION (environment):
  SERVER_PORT       HTTP server port (default: 8080)
  DATABASE_PATH     SQLite database path (default: leave.db,
                    ":memory:" for in-memory)
  ENVIRONMENT       development | production (logger selection)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete
  3. Close database connection
  4. Exit

SEE ALSO:
  - api/server.go: Router configuration
  - store/sqlite/sqlite.go: Database implementation
*/
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/warp/leave-scheduler/api"
	"github.com/warp/leave-scheduler/config"
	"github.com/warp/leave-scheduler/schedule"
	"github.com/warp/leave-scheduler/store/sqlite"
)

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Environment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	store, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer store.Close()

	if err := seedRoster(context.Background(), store); err != nil {
		logger.Fatal("failed to seed roster", zap.Error(err))
	}

	handler := api.NewHandler(store, logger)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		logger.Info("server starting",
			zap.Int("port", cfg.Server.Port),
			zap.String("database", cfg.Database.Path))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}

func newLogger(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// seedRoster writes the default ten-employee roster the first time the
// server runs against an empty database.
func seedRoster(ctx context.Context, store schedule.Store) error {
	employees, err := store.ReadEmployees(ctx)
	if err != nil {
		return err
	}
	if len(employees) > 0 {
		return nil
	}
	return store.WriteEmployees(ctx, schedule.DefaultRoster())
}
