package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobquest-web/internal/api/routes"
	"jobquest-web/internal/apply"
	"jobquest-web/internal/backend"
	"jobquest-web/internal/config"
	"jobquest-web/internal/logging"
	"jobquest-web/internal/savedjobs"
	"jobquest-web/internal/session"

	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.Shutdown()

	logger := logging.GetGlobalLogger()
	logger.Info("Starting JobQuest web gateway")

	// Session store (Redis)
	store := session.NewStore(cfg)
	defer store.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := store.Ping(pingCtx); err != nil {
		logger.Warn("Redis is not reachable at startup, sessions will fail until it is", map[string]interface{}{
			"error": err.Error(),
		})
	}
	cancel()

	// Backend API client
	client := backend.NewClient(cfg, logger)

	// Shared saved-jobs state, persisted back into the session records
	saved := savedjobs.NewManager(cfg.Gateway.SignInNoticeTimeout, func(sessionID string, ids []string) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.SaveBookmarks(ctx, sessionID, ids); err != nil {
			logger.Warn("Failed to persist saved jobs", map[string]interface{}{
				"session_id": sessionID,
				"error":      err.Error(),
			})
		}
	})

	// Application flow registry
	flows := apply.NewRegistry(client, cfg.Gateway.GuestConfirmDelay, logger)

	// Background sweeps for state that browsers abandon without telling us:
	// application flows idle past their TTL and saved-job sets for sessions
	// whose cookies have lapsed.
	sweepCtx, stopSweeps := context.WithCancel(context.Background())
	flows.StartCleanup(sweepCtx, time.Minute, cfg.Gateway.FlowTTL)
	saved.StartCleanup(sweepCtx, 10*time.Minute, cfg.Session.TTL)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Setup routes
	routes.SetupRoutes(e, cfg, client, store, saved, flows)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")
		stopSweeps()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{
				"error": err.Error(),
			})
		}

		if err := store.Close(); err != nil {
			logger.Error("Error closing session store", map[string]interface{}{
				"error": err.Error(),
			})
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil {
		logger.Error("Server stopped", map[string]interface{}{"error": err.Error()})
	}
}
