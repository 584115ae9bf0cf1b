// cmd/worker-manager/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"emis-workers/internal/api"
	"emis-workers/internal/common/aws"
	"emis-workers/internal/common/cache"
	"emis-workers/internal/common/camunda"
	"emis-workers/internal/common/config"
	"emis-workers/internal/common/logger"
	"emis-workers/internal/common/observability"
	"emis-workers/internal/emis/catalog"
	"emis-workers/pkg/registry"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...",
		zap.String("app", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	ctx := context.Background()

	obs, err := observability.New("worker-manager")
	if err != nil {
		zapLog.Warn("observability init failed, job metrics disabled", zap.Error(err))
	}
	defer obs.Shutdown(ctx)

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		zapLog.Fatal("question catalog failed to load", zap.Error(err))
	}
	zapLog.Info("Question catalog loaded",
		zap.Int("questions", cat.Len()),
		zap.Int("maxScore", cat.MaxScore()),
	)

	reg, err := registry.Load(cfg.Registry.Path)
	if err != nil {
		zapLog.Fatal("activity registry failed to load", zap.Error(err))
	}

	// --- Redis report cache; generate-report renders every job without it ---
	redisClient := cache.NewRedis(cfg.Cache.Redis)
	defer redisClient.Close()

	var reportCache cache.Cache
	err = retryWithBackoff(func() error {
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		return redisClient.Ping(pingCtx)
	}, 5, time.Second, zapLog, "Redis connection")
	if err != nil {
		zapLog.Warn("redis unavailable, report cache disabled", zap.Error(err))
	} else {
		reportCache = redisClient
		zapLog.Info("Redis connected successfully")
	}

	// --- SES mailer ---
	var mailer deliverMailer
	if cfg.Integrations.AWS.SES.Enabled {
		ses, err := aws.NewSESClient(ctx, cfg.Integrations.AWS.Region, cfg.Integrations.AWS.SES.FromEmail)
		if err != nil {
			zapLog.Fatal("SES client failed", zap.Error(err))
		}
		mailer = ses
		zapLog.Info("SES mailer enabled", zap.String("region", cfg.Integrations.AWS.Region))
	} else {
		zapLog.Info("SES disabled, deliver-report will not send mail")
	}

	// --- Zeebe client ---
	var zeebeClient *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		zeebeClient, err = camunda.NewClientWithConfig(ctx, camunda.ClientConfigFrom(cfg.Camunda))
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	handlers, err := buildHandlers(dependencies{
		cfg:      cfg,
		registry: reg,
		catalog:  cat,
		log:      log,
		obs:      obs,
		cache:    reportCache,
		mailer:   mailer,
	})
	if err != nil {
		zapLog.Fatal("worker setup failed", zap.Error(err))
	}

	var workers []*camunda.CamundaWorker
	for _, h := range handlers {
		if !h.IsEnabled() {
			zapLog.Info("worker disabled", zap.String("taskType", h.GetTaskType()))
			continue
		}
		wcfg := config.GetWorkerConfig(cfg, h.GetTaskType())
		workers = append(workers, camunda.NewWorker(zeebeClient.GetClient(), h, wcfg, log))
	}
	zapLog.Info("Workers registered", zap.Int("started", len(workers)), zap.Int("total", len(handlers)))

	// --- HTTP API, health and metrics ---
	checks := map[string]api.Check{"zeebe": zeebeClient.HealthCheck}
	if reportCache != nil {
		checks["redis"] = redisClient.Ping
	}
	router := api.NewServer(api.Options{
		Catalog: cat,
		Logger:  log.WithFields(map[string]interface{}{"component": "api"}),
		Checks:  checks,
	}).Router()
	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		zapLog.Info("HTTP server listening", zap.String("address", cfg.Server.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Error("HTTP server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, w := range workers {
		w.Stop(shutdownCtx)
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("HTTP server shutdown failed", zap.Error(err))
	}
	if err := zeebeClient.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped")
}
