// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	awsclient "legal-workers/internal/common/aws"
	"legal-workers/internal/common/camunda"
	"legal-workers/internal/common/config"
	"legal-workers/internal/common/database"
	commonhttp "legal-workers/internal/common/http"
	"legal-workers/internal/common/logger"
	"legal-workers/internal/common/observability"
	"legal-workers/internal/legal/archive"
	"legal-workers/internal/legal/ask"

	alq "legal-workers/internal/workers/ai-conversation/ask-legal-question"
	dd "legal-workers/internal/workers/documents/deliver-document"
	gd "legal-workers/internal/workers/documents/generate-document"
	sd "legal-workers/internal/workers/documents/search-documents"
	sr "legal-workers/internal/workers/documents/suggest-references"
	cd "legal-workers/internal/workers/timeline/calculate-deadlines"
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

	zapLog := logger.NewWithOutput(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...",
		zap.String("app", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs, err := observability.New(observability.Options{
		ServiceName:    cfg.App.Name,
		ServiceVersion: cfg.App.Version,
	})
	if err != nil {
		zapLog.Fatal("observability init failed", zap.Error(err))
	}

	ctx := context.Background()

	// --- Zeebe ---
	zeebe, err := camunda.NewClient(ctx, cfg.Camunda, log)
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	// --- PostgreSQL ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	if err := pg.Migrate(ctx); err != nil {
		zapLog.Fatal("postgres migration failed", zap.Error(err))
	}
	zapLog.Info("PostgreSQL connected successfully")

	// --- Elasticsearch ---
	var es *database.ElasticsearchClient
	err = retryWithBackoff(func() error {
		var err error
		es, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			return err
		}
		return es.Ping()
	}, 15, 2*time.Second, zapLog, "Elasticsearch connection")
	if err != nil {
		zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
	}
	if err := es.EnsureIndex(ctx, cfg.Database.Elasticsearch.Index); err != nil {
		zapLog.Fatal("elasticsearch index setup failed", zap.Error(err))
	}
	zapLog.Info("Elasticsearch connected successfully")

	// --- Redis ---
	var rdb *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		rdb, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return rdb.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")
	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer rdb.Close()
	zapLog.Info("Redis connected successfully")

	// --- Shared domain services ---
	artifacts := archive.NewArtifactStore(rdb.Client, time.Duration(cfg.Documents.ArtifactTTL)*time.Second)
	history := archive.NewHistory(pg.DB)
	index := archive.NewIndex(es.Client, cfg.Database.Elasticsearch.Index)

	askTimeout := config.GetDuration(cfg.Ask.Timeout)
	httpClient := commonhttp.NewClient(askTimeout)
	defer httpClient.CloseIdleConnections()
	askClient := ask.NewClient(&ask.Config{
		BaseURL:    cfg.Ask.BaseURL,
		Timeout:    askTimeout,
		MaxRetries: cfg.Ask.MaxRetries,
	}, httpClient, log)

	var sesService dd.SESService
	if cfg.Integrations.AWS.SES.Enabled {
		client, err := awsclient.NewSESClient(ctx, cfg.Integrations.AWS.Region)
		if err != nil {
			zapLog.Fatal("ses client init failed", zap.Error(err))
		}
		sesService = client
	}
	var snsService dd.SNSService
	if cfg.Integrations.AWS.SNS.Enabled {
		client, err := awsclient.NewSNSClient(ctx, cfg.Integrations.AWS.Region)
		if err != nil {
			zapLog.Fatal("sns client init failed", zap.Error(err))
		}
		snsService = client
	}

	// --- Workers ---
	manager := camunda.NewManager(zeebe.GetClient(), log, obs.Instrument)

	srHandler := sr.NewHandler(sr.FromAppConfig(cfg), log)
	manager.Start(sr.TaskType, config.GetWorkerConfig(cfg, sr.TaskType), srHandler.Handle)

	gdHandler := gd.NewHandler(gd.FromAppConfig(cfg), artifacts, history, index, log)
	manager.Start(gd.TaskType, config.GetWorkerConfig(cfg, gd.TaskType), gdHandler.Handle)

	ddHandler := dd.NewHandler(dd.FromAppConfig(cfg), artifacts, sesService, snsService, log)
	manager.Start(dd.TaskType, config.GetWorkerConfig(cfg, dd.TaskType), ddHandler.Handle)

	sdHandler := sd.NewHandler(sd.FromAppConfig(cfg), index, log)
	manager.Start(sd.TaskType, config.GetWorkerConfig(cfg, sd.TaskType), sdHandler.Handle)

	alqConfig := alq.FromAppConfig(cfg)
	alqHandler := alq.NewHandler(alqConfig, askClient, alq.NewAnswerCache(rdb.Client, alqConfig.CacheTTL), log)
	manager.Start(alq.TaskType, config.GetWorkerConfig(cfg, alq.TaskType), alqHandler.Handle)

	cdHandler := cd.NewHandler(cd.FromAppConfig(cfg), log)
	manager.Start(cd.TaskType, config.GetWorkerConfig(cfg, cd.TaskType), cdHandler.Handle)

	zapLog.Info("Workers registered", zap.Strings("taskTypes", manager.TaskTypes()))

	// --- Health & Metrics Server ---
	var shuttingDown atomic.Bool
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusOK, "healthy", nil)
	})
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		if shuttingDown.Load() {
			writeStatus(w, http.StatusServiceUnavailable, "shutting down", nil)
			return
		}
		checkCtx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()
		checks := map[string]string{
			"zeebe":         errString(zeebe.HealthCheck(checkCtx)),
			"postgres":      errString(pg.Ping(checkCtx)),
			"redis":         errString(rdb.Ping(checkCtx)),
			"elasticsearch": errString(es.Ping()),
		}
		for _, v := range checks {
			if v != "ok" {
				writeStatus(w, http.StatusServiceUnavailable, "not ready", checks)
				return
			}
		}
		writeStatus(w, http.StatusOK, "ready", checks)
	})
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{Addr: ":8080", Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		zapLog.Info("Health/Metrics server listening on :8080")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")
	shuttingDown.Store(true)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	manager.Stop()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error stopping health server", zap.Error(err))
	}
	if err := zeebe.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}
	if err := obs.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error flushing telemetry", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

func writeStatus(w http.ResponseWriter, code int, status string, checks map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	body := map[string]interface{}{
		"status": status,
		"time":   time.Now().Format(time.RFC3339),
	}
	if checks != nil {
		body["checks"] = checks
	}
	json.NewEncoder(w).Encode(body)
}

func errString(err error) string {
	if err != nil {
		return err.Error()
	}
	return "ok"
}
