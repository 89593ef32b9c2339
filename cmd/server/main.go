// Package main is the entry point for the Sky Herald server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"sky-herald.io/herald/internal/app"
	"sky-herald.io/herald/internal/config"
	"sky-herald.io/herald/internal/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("Starting Sky Herald",
		zap.Int("portal_port", cfg.Server.Port),
		zap.Int("ingest_port", cfg.Ingest.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// Bootstrap application
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := app.Bootstrap(ctx, cfg)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	defer application.Shutdown()

	// Start background services (River workers, queue worker, supervisor).
	if err := application.Start(ctx); err != nil {
		return fmt.Errorf("start background services: %w", err)
	}

	// Portal HTTP server: inbox API for the frontend.
	portalSrv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      application.PortalRouter,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Ingestion HTTP server: internal listener the portal backend posts to.
	ingestSrv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Ingest.Port),
		Handler:      application.IngestRouter,
		ReadTimeout:  cfg.Ingest.ReadTimeout,
		WriteTimeout: cfg.Ingest.WriteTimeout,
	}

	errCh := make(chan error, 2)
	go func() { //nolint:naked-goroutine // main server goroutine is exempt
		if err := portalSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("portal server: %w", err)
		}
	}()
	go func() { //nolint:naked-goroutine // main server goroutine is exempt
		if err := ingestSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("ingest server: %w", err)
		}
	}()

	logger.Info("Servers started",
		zap.String("portal_addr", portalSrv.Addr),
		zap.String("ingest_addr", ingestSrv.Addr),
	)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		logger.Info("Shutdown signal received")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	logger.Info("Shutting down servers...")
	if err := ingestSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("ingest server shutdown", zap.Error(err))
	}
	if err := portalSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("portal server shutdown: %w", err)
	}

	logger.Info("Servers stopped gracefully")
	return nil
}
