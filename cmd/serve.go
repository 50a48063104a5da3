package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"example.com/fleetdesk/api"
	"example.com/fleetdesk/config"
	"example.com/fleetdesk/internal/backend"
	"example.com/fleetdesk/internal/cache"
	"example.com/fleetdesk/internal/service"
	"example.com/fleetdesk/internal/telemetry"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Serve command flags
	disableNewRelic bool
	serverPort      int
	gracefulTimeout int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Starts the fleetdesk API server that handles fleet administration,
catalog lookups and the vehicle delivery wizard.

The server respects the configuration in config.yaml or specified via the --config flag.
It will gracefully shut down on receiving SIGINT or SIGTERM signals.`,
	Run: func(cmd *cobra.Command, args []string) {
		startServer()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Serve-specific flags
	serveCmd.Flags().BoolVar(&disableNewRelic, "disable-newrelic", false, "Disable New Relic monitoring")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "Server port (overrides config file)")
	serveCmd.Flags().IntVar(&gracefulTimeout, "graceful-timeout", 30, "Graceful shutdown timeout in seconds")
}

// startServer initializes and starts the API server
func startServer() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Override config with command line flags if provided
	if serverPort > 0 {
		cfg.Server.Port = serverPort
	}

	log.WithFields(logrus.Fields{
		"port":             cfg.Server.Port,
		"backend_url":      cfg.Backend.BaseURL,
		"redis_enabled":    cfg.Redis.Enabled,
		"newrelic_enabled": cfg.NewRelic.Enabled && !disableNewRelic,
	}).Info("Initializing service components...")

	// Initialize the cache. Redis is optional; without it the service still
	// works, every read just hits the backend.
	var c cache.Cache
	if cfg.Redis.Enabled {
		log.Info("Connecting to Redis...")
		c, err = cache.NewRedisCache(cfg.Redis)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
	} else {
		log.Info("Redis disabled, using in-memory cache")
		c = cache.NewMemoryCache()
	}
	defer func() {
		log.Info("Closing cache...")
		if err := c.Close(); err != nil {
			log.WithField("error", err.Error()).Error("Error closing cache")
		}
	}()

	// Initialize New Relic if enabled
	nrCfg := cfg.NewRelic
	if disableNewRelic {
		nrCfg.Enabled = false
	}
	nrApp, err := telemetry.InitNewRelic(nrCfg)
	if err != nil {
		log.Warnf("Failed to initialize New Relic: %v", err)
	} else if nrApp != nil {
		log.Info("New Relic monitoring initialized successfully")
	}

	// Create the backend API client
	log.Info("Initializing backend client...")
	backendClient := backend.New(cfg.Backend, log)

	// Create service with configuration
	log.Info("Initializing service layer...")
	svc, err := service.New(service.Config{
		Backend:     backendClient,
		Cache:       c,
		Logger:      log,
		DocsBaseURL: cfg.Docs.BaseURL,
	})
	if err != nil {
		log.Fatalf("Failed to initialize service: %v", err)
	}

	// Create and initialize the server
	log.Info("Initializing API server...")
	server := api.NewServer(cfg, log, nrApp, svc)

	// Set up graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Start the server in a goroutine
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sig := <-stop
	log.Infof("Received signal %s, shutting down gracefully...", sig.String())

	// Create a timeout context for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(gracefulTimeout)*time.Second)
	defer cancel()

	// Shutdown HTTP server
	log.Info("Shutting down HTTP server...")
	if err := server.Shutdown(ctx); err != nil {
		log.Warnf("Server shutdown error: %v", err)
	}

	log.Info("Server shutdown complete")
}
