// The worker ingests configured RSS feeds into the article store. Syncs
// run on a cron schedule, once at startup, and on demand via
// POST /ingest on the trigger port, which also exposes /metrics.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"cfo-pulse/internal/config"
	"cfo-pulse/internal/domain/entity"
	pgRepo "cfo-pulse/internal/infra/adapter/persistence/postgres"
	"cfo-pulse/internal/infra/db"
	"cfo-pulse/internal/infra/scraper"
	workerPkg "cfo-pulse/internal/infra/worker"
	"cfo-pulse/internal/observability/logging"
	"cfo-pulse/internal/usecase/ingest"
)

func main() {
	_ = godotenv.Load()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	workerConfig, err := workerPkg.LoadConfigFromEnv(logger)
	if err != nil {
		logger.Error("failed to load worker configuration", slog.Any("error", err))
		os.Exit(1)
	}

	sources, err := config.LoadSources()
	if err != nil {
		logger.Error("failed to load feed sources", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("feed sources loaded", slog.Int("count", len(sources)))

	svc := setupIngestService(database, workerConfig)
	runner := &ingestRunner{
		svc:     svc,
		sources: sources,
		timeout: workerConfig.IngestTimeout,
		logger:  logger,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	healthServer := workerPkg.NewHealthServer(fmt.Sprintf(":%d", workerConfig.HealthPort), logger)
	go func() {
		if err := healthServer.Start(ctx); err != nil && err != http.ErrServerClosed {
			logger.Error("health server failed", slog.Any("error", err))
		}
	}()

	go startTriggerServer(ctx, logger, runner, workerConfig.TriggerPort)

	location, err := time.LoadLocation(workerConfig.Timezone)
	if err != nil {
		logger.Error("failed to load timezone", slog.Any("error", err))
		os.Exit(1)
	}

	scheduler := cron.New(cron.WithLocation(location))
	if _, err := scheduler.AddFunc(workerConfig.CronSchedule, func() {
		runner.Run(ctx, "cron")
	}); err != nil {
		logger.Error("failed to register cron job", slog.Any("error", err))
		os.Exit(1)
	}
	scheduler.Start()
	healthServer.SetReady(true)
	logger.Info("worker started",
		slog.String("schedule", workerConfig.CronSchedule),
		slog.String("timezone", workerConfig.Timezone))

	// Startup sync so a fresh deployment serves articles immediately.
	runner.Run(ctx, "startup")

	<-ctx.Done()
	logger.Info("shutdown signal received")
	healthServer.SetReady(false)

	stopCtx := scheduler.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(30 * time.Second):
		logger.Warn("cron jobs did not finish before shutdown deadline")
	}
	logger.Info("worker stopped")
}

func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("migration failed", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

func setupIngestService(database *sql.DB, cfg workerPkg.Config) *ingest.Service {
	articleRepo := pgRepo.NewArticleRepo(database)
	feedFetcher := scraper.NewRSSFetcher(scraper.NewFeedHTTPClient())
	images := &ingest.ImageResolver{Scraper: scraper.NewPageScraper()}
	return ingest.NewService(articleRepo, feedFetcher, images, cfg.ScrapeParallelism)
}

// ingestRunner serializes sync runs: cron, startup, and on-demand
// triggers share one in-flight slot, and overlapping requests are
// dropped rather than queued.
type ingestRunner struct {
	svc      *ingest.Service
	sources  []entity.FeedSource
	timeout  time.Duration
	logger   *slog.Logger
	inFlight atomic.Bool
}

// Running reports whether a sync is currently in flight.
func (r *ingestRunner) Running() bool {
	return r.inFlight.Load()
}

// Run executes one sync over the configured sources unless another is
// already in flight. Reports whether the run was started.
func (r *ingestRunner) Run(ctx context.Context, trigger string) bool {
	return r.RunWith(ctx, trigger, nil)
}

// RunWith is Run with an optional source override. A nil or empty
// override falls back to the configured registry.
func (r *ingestRunner) RunWith(ctx context.Context, trigger string, override []entity.FeedSource) bool {
	if !r.inFlight.CompareAndSwap(false, true) {
		r.logger.Warn("sync already in flight, skipping", slog.String("trigger", trigger))
		return false
	}
	defer r.inFlight.Store(false)

	sources := r.sources
	if len(override) > 0 {
		sources = override
	}

	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	r.logger.Info("sync starting",
		slog.String("trigger", trigger),
		slog.Int("sources", len(sources)))
	stats, err := r.svc.Run(runCtx, sources)
	if err != nil {
		r.logger.Error("sync failed",
			slog.String("trigger", trigger),
			slog.Any("error", err))
		return true
	}
	r.logger.Info("sync completed",
		slog.String("trigger", trigger),
		slog.Int("sources", stats.Sources),
		slog.Int64("items", stats.Items),
		slog.Int64("inserted", stats.Inserted),
		slog.Int64("updated", stats.Updated),
		slog.Int64("item_errors", stats.ItemErrors),
		slog.Int64("feed_errors", stats.FeedErrors),
		slog.Duration("duration", stats.Duration))
	return true
}
