package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/yiannitsarou/classmix"
	libmetrics "github.com/yiannitsarou/classmix/internal/metrics"
	"github.com/yiannitsarou/classmix/test/simulation/internal/config"
	"github.com/yiannitsarou/classmix/test/simulation/internal/metrics"
	"github.com/yiannitsarou/classmix/test/simulation/internal/runner"
)

func main() {
	configPath := flag.String("config", "configs/dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load config
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Starting simulation in %s mode", cfg.Simulation.Mode)
	if cfg.Simulation.Mode == config.ModeSoak {
		log.Printf("Simulation will run for %v", cfg.Simulation.Duration)
	} else {
		log.Printf("Simulation will execute %d runs (base seed %d)", cfg.Simulation.Runs, cfg.Simulation.Seed)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Apply duration timeout in soak mode
	if cfg.Simulation.Mode == config.ModeSoak {
		ctx, cancel = context.WithTimeout(ctx, cfg.Simulation.Duration)
		defer cancel()
	}

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Attach the optimizer's Prometheus collector when the endpoint is enabled
	var opts []classmix.Option
	if cfg.Metrics.Enabled {
		opts = append(opts, classmix.WithMetrics(libmetrics.NewPrometheus(nil, "")))

		server := metrics.NewPrometheusServer(cfg.Metrics.Addr)
		go func() {
			if serveErr := server.Start(ctx); serveErr != nil {
				log.Printf("Metrics server stopped with error: %v", serveErr)
			}
		}()
	}

	r, err := runner.New(cfg, opts...)
	if err != nil {
		log.Fatalf("Failed to create runner: %v", err)
	}

	// Run the sweep in the background so signals stay responsive
	errCh := make(chan error, 1)
	reportCh := make(chan *runner.Report, 1)
	go func() {
		report, runErr := r.Run(ctx)
		if runErr != nil {
			errCh <- runErr
			return
		}
		reportCh <- report
	}()

	// Wait for either completion, failure, or signal
	select {
	case report := <-reportCh:
		log.Printf("Simulation completed successfully: %s", report)
	case runErr := <-errCh:
		log.Fatalf("Simulation failed: %v", runErr)
	case sig := <-sigCh:
		log.Printf("Received signal %v, shutting down...", sig)
		cancel()

		// Soak mode finishes cleanly on cancellation; sweep mode reports it.
		select {
		case report := <-reportCh:
			log.Printf("Partial report: %s", report)
		case runErr := <-errCh:
			if errors.Is(runErr, context.Canceled) {
				log.Printf("Sweep interrupted: %v", runErr)
			} else {
				log.Fatalf("Simulation failed during shutdown: %v", runErr)
			}
		}
	}
}
