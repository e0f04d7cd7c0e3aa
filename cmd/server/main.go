package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ppgiii/ViZ/internal/bootstrap"
	"github.com/ppgiii/ViZ/pkg/config"
	"github.com/ppgiii/ViZ/pkg/logger"
	"github.com/ppgiii/ViZ/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	location, err := cfg.Feed.Location()
	if err != nil {
		log.Fatalf("Failed to load display timezone: %v", err)
	}

	appLogger, err := logger.NewLogger(logger.WithLoggingLevel(logger.Level(cfg.App.LogLevel)))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	b := bootstrap.Bootstrap{}
	b.Init(bootstrap.BootstrapConfig{
		Config:   *cfg,
		Location: location,
		Web:      web.Handler{},
		Logger:   appLogger,
	})

	// Poller stops when the main context is cancelled
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go b.Usecase.Poller.Run(ctx)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: b.Server.Handler(),
	}

	errChan := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	appLogger.Info("Feed server started successfully",
		logger.Field{Key: "app", Value: cfg.App.Name},
		logger.Field{Key: "environment", Value: cfg.App.Environment},
		logger.Field{Key: "port", Value: cfg.App.Port},
		logger.Field{Key: "symbol", Value: cfg.Feed.Symbol},
		logger.Field{Key: "interval", Value: cfg.Feed.Interval.String()},
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		appLogger.Info("Received shutdown signal", logger.Field{
			Key:   "signal",
			Value: sig.String(),
		})
	case err := <-errChan:
		appLogger.Error(err, logger.Field{
			Key:   "action",
			Value: "listen_and_serve",
		})
	}

	// Stop the poller before tearing down the transports
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error(err, logger.Field{
			Key:   "action",
			Value: "shutdown_http_server",
		})
	}

	b.Hub.Close()

	appLogger.Info("Feed server shutdown complete")
}
