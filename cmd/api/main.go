// ABOUTME: Main entry point for the Fjapps Store API server
// ABOUTME: Wires together all components and starts the HTTP server

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

	"fjapps-store/api"
	"fjapps-store/api/handlers"
	"fjapps-store/core/catalog"
	"fjapps-store/core/interfaces"
	"fjapps-store/core/screen"
	"fjapps-store/infrastructure/catalog/itunes"
	stdhttp "fjapps-store/infrastructure/http/standard"
	logruslogger "fjapps-store/infrastructure/logger/logrus"
	"fjapps-store/infrastructure/metrics/prometheus"
	"fjapps-store/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.NewLogger(logruslogger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	logger.Info("Starting Fjapps Store API", map[string]interface{}{
		"port":            cfg.Server.Port,
		"catalog":         cfg.Catalog.BaseURL,
		"country":         cfg.Catalog.Country,
		"limit":           cfg.Catalog.Limit,
		"timeout":         cfg.Catalog.Timeout.String(),
		"max_attempts":    cfg.Catalog.MaxAttempts,
		"rate_per_minute": cfg.Catalog.RatePerMinute,
		"search_timeout":  cfg.Catalog.SearchTimeout.String(),
		"screens_max":     cfg.Screens.Max,
		"screen_idle_ttl": cfg.Screens.IdleTTL.String(),
		"trust_proxy":     cfg.Server.TrustProxy,
	})

	metrics := prometheus.New("fjapps_store")

	httpOpts := []stdhttp.Option{
		stdhttp.WithMaxAttempts(cfg.Catalog.MaxAttempts),
		stdhttp.WithRateLimit(cfg.Catalog.RatePerMinute),
	}
	if logger.IsDebug() {
		httpOpts = append(httpOpts, stdhttp.WithTransport(stdhttp.NewLoggingRoundTripper(nil, logger)))
	}
	httpClient := stdhttp.NewStandardHTTPClient(cfg.Catalog.Timeout, httpOpts...)

	catalogClient := itunes.NewClient(httpClient, itunes.Config{
		BaseURL: cfg.Catalog.BaseURL,
		Country: cfg.Catalog.Country,
	})

	deps := interfaces.Dependencies{
		Catalog: catalogClient,
		Logger:  logger,
		Metrics: metrics,
	}

	catalogService := catalog.NewService(deps, catalog.Options{
		Limit:   cfg.Catalog.Limit,
		Timeout: cfg.Catalog.SearchTimeout,
	})
	registry := screen.NewRegistry(catalogService, logger,
		screen.WithMaxScreens(cfg.Screens.Max),
		screen.WithIdleTTL(cfg.Screens.IdleTTL),
	)

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	if cfg.Screens.IdleTTL > 0 {
		go sweepScreens(sweepCtx, registry, cfg.Screens.IdleTTL, logger)
	}

	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:     logger,
		Metrics:    metrics,
		RateLimit:  cfg.Server.RateLimit,
		RateWindow: cfg.Server.RateWindow,
		TrustProxy: cfg.Server.TrustProxy,
	})

	handlers.NewCatalogHandler(catalogService).RegisterRoutes(humaAPI)
	handlers.NewScreenHandler(registry, logger).RegisterRoutes(humaAPI)
	handlers.NewHealthHandler(registry).RegisterRoutes(humaAPI)

	// A synchronous catalog search gives up after SearchTimeout, limiter wait
	// included, so WriteTimeout only needs headroom past it
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Catalog.SearchTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	stopSweep()
	registry.CloseAll()

	logger.Info("Server stopped", nil)
}

// sweepScreens discards idle screens even when no new screen is opened
func sweepScreens(ctx context.Context, registry *screen.Registry, ttl time.Duration, logger interfaces.Logger) {
	interval := ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := registry.Sweep(); n > 0 {
				logger.Info("Idle screens swept", map[string]interface{}{
					"swept":     n,
					"remaining": registry.Len(),
				})
			}
		}
	}
}

func init() {
	fmt.Println(`
    ______  _                            _____ __                
   / ____/ (_)___ _____  ____  _____   / ___// /_____  ________ 
  / /_    / / __ '/ __ \/ __ \/ ___/   \__ \/ __/ __ \/ ___/ _ \
 / __/   / / /_/ / /_/ / /_/ (__  )   ___/ / /_/ /_/ / /  /  __/
/_/   __/ /\__,_/ .___/ .___/____/   /____/\__/\____/_/   \___/ 
     /___/     /_/   /_/                                        
	`)
}
