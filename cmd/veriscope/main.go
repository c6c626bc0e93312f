// cmd/veriscope/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	fmt.Println("veriscope v" + VERSION + " starting up...")

	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := InitLogger(cfg.LogPath, cfg.LogLevel); err != nil {
		log.Printf("Warning: file logging unavailable: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Prediction history and accounts; the service runs without them
	var store *Store
	if cfg.EnableDatabase {
		store, err = NewStore(ctx, cfg)
		if err != nil {
			Logger().Error("Database unavailable, continuing without history: %v", err)
			store = nil
		} else {
			Logger().Info("Database initialized")
			defer func() {
				closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer closeCancel()
				if err := store.Close(closeCtx); err != nil {
					Logger().Warning("Failed to close database: %v", err)
				}
			}()
		}
	}

	// Corroboration search cascade, ordered by the providers file
	order, err := LoadProviderOrder(cfg.ProvidersPath)
	if err != nil {
		Logger().Warning("Using default provider order: %v", err)
		order = DefaultProviderOrder()
	}
	providers := BuildProviders(cfg, order)
	Logger().Info("Search cascade ready with %d providers", len(providers))

	var validator ClaimValidator
	if cfg.EnableNewsValidation && len(providers) > 0 {
		validator = NewNewsValidator(NewCascade(providers))
	}

	pipeline := NewPipeline(
		NewLocalClassifier(cfg),
		NewAIChecker(cfg),
		validator,
		cfg.BatchWorkers,
	)

	authService := NewAuthService(store, cfg)
	server := NewServer(cfg, pipeline, authService, store)

	scheduler := NewScheduler(store, cfg)
	if err := scheduler.Start(); err != nil {
		Logger().Error("Failed to start scheduler: %v", err)
	}
	defer scheduler.Stop()

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      server.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		Logger().Info("HTTP server listening on :%d", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			Logger().Error("HTTP server failed: %v", err)
			cancel()
		}
	}()

	// Wait for shutdown signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case s := <-sig:
		Logger().Info("Received signal %v, shutting down", s)
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		Logger().Error("HTTP shutdown failed: %v", err)
	}

	Logger().Info("Shutdown complete")
}
