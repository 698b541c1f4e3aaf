package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/paullizer/WildfireRiskManagementAgent/internal/api"
	"github.com/paullizer/WildfireRiskManagementAgent/internal/config"
	"github.com/paullizer/WildfireRiskManagementAgent/internal/logging"
	"github.com/paullizer/WildfireRiskManagementAgent/internal/routes"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	// Initialize structured logging
	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Drone mission API starting up",
		"environment", cfg.AppEnv,
		"config", cfg.String(),
		"timestamp", time.Now().Format(time.RFC3339),
	)

	deps, err := api.InitDependencies(cfg)
	if err != nil {
		logging.Fatal("Failed to initialize dependencies", "error", err.Error())
	}

	router := routes.RegisterRoutes(cfg, deps)

	// Setup metrics endpoint outside of Chi router so it skips the API key check
	mux := http.NewServeMux()
	if cfg.MetricsEnabled {
		mux.Handle("/metrics", deps.Metrics.Handler())
		logging.Info("Prometheus metrics endpoint registered at /metrics")
	}
	mux.Handle("/", router) // Mount Chi router at root

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logging.Info("Server starting", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logging.Info("Shutting down server", "timeout", cfg.ShutdownTimeout.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logging.Error("Server stopped with error", "error", err.Error())
		logging.Close()
		os.Exit(1)
	}
	logging.Info("Server stopped")
}
