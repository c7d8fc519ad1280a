// Package main is the entry point for the Javanese calendar API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zapponejosh/tanggalan-api/internal/api"
	"github.com/zapponejosh/tanggalan-api/internal/config"
	"github.com/zapponejosh/tanggalan-api/internal/database"
	"github.com/zapponejosh/tanggalan-api/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	log := logger.Setup(cfg)

	if err := run(cfg, log); err != nil {
		log.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	log.Info("starting tanggalan API",
		slog.Int("port", cfg.Port),
		slog.String("timezone", cfg.Timezone),
		slog.String("log_level", cfg.LogLevel),
	)

	db, err := database.Open(database.DefaultConfig(cfg.DatabasePath), log)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logAuthMode(ctx, cfg)

	if _, err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	handlers := api.NewHandlers(db, cfg, log)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           api.SetupRoutes(handlers, cfg, log),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "tanggalan API ready", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// logAuthMode reports how /api/v1 requests will be authenticated.
// Production never gets here without a key; config.Validate rejects it.
func logAuthMode(ctx context.Context, cfg *config.Config) {
	switch {
	case cfg.APIKey != "":
		logger.Info(ctx, "API key authentication enabled")
	case cfg.IsDevelopment():
		logger.Warn(ctx, "API_KEY is not set; /api/v1 is open to anyone")
	default:
		logger.Warn(ctx, "API_KEY is not set; every /api/v1 request will be rejected",
			slog.String("env", cfg.Env))
	}
}
