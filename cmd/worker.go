package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"example.com/fleetdesk/config"
	"example.com/fleetdesk/internal/backend"
	"example.com/fleetdesk/internal/cache"
	"example.com/fleetdesk/internal/service"

	"github.com/go-co-op/gocron/v2"
	"github.com/spf13/cobra"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Start the background worker",
	Long:  `Start the background worker that keeps the lookup catalogs warm in the cache`,
	RunE:  runWorker,
}

func init() {
	rootCmd.AddCommand(workerCmd)
}

func runWorker(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Set up signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// Catalog warming is pointless without a shared cache to warm
	if !cfg.Redis.Enabled {
		log.Warn("Redis is disabled, catalog refresh worker has nothing to warm")
	}

	var c cache.Cache
	if cfg.Redis.Enabled {
		c, err = cache.NewRedisCache(cfg.Redis)
		if err != nil {
			return err
		}
	} else {
		c = cache.NewMemoryCache()
	}
	defer c.Close()

	backendClient := backend.New(cfg.Backend, log)

	svc, err := service.New(service.Config{
		Backend:     backendClient,
		Cache:       c,
		Logger:      log,
		DocsBaseURL: cfg.Docs.BaseURL,
	})
	if err != nil {
		return err
	}

	// Create a scheduler
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	// Add the catalog refresh job
	_, err = scheduler.NewJob(
		gocron.DurationJob(cfg.Worker.CatalogRefreshInterval),
		gocron.NewTask(func() {
			log.Info("Refreshing lookup catalogs")
			if err := svc.RefreshCatalogs(ctx); err != nil {
				log.WithField("error", err.Error()).Error("Failed to refresh catalogs")
			}
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return err
	}

	log.WithField("interval", cfg.Worker.CatalogRefreshInterval.String()).
		Info("Starting catalog refresh worker")
	scheduler.Start()

	// Wait for context cancellation
	<-ctx.Done()

	log.Info("Worker shutting down gracefully")
	return scheduler.Shutdown()
}
