// Package worker holds the ingestion worker's runtime configuration and
// its health endpoint.
package worker

import (
	"fmt"
	"log/slog"
	"time"

	"cfo-pulse/internal/pkg/config"
	"cfo-pulse/internal/usecase/ingest"
)

// Config controls the ingestion worker's scheduling and execution limits.
type Config struct {
	// CronSchedule is the 5-field cron expression driving periodic syncs.
	CronSchedule string

	// Timezone is the IANA timezone the schedule is evaluated in.
	Timezone string

	// ScrapeParallelism caps concurrent item processing within one feed.
	ScrapeParallelism int

	// IngestTimeout bounds a full sync run across all sources.
	IngestTimeout time.Duration

	// HealthPort serves liveness/readiness probes.
	HealthPort int

	// TriggerPort serves the on-demand sync endpoint and /metrics.
	TriggerPort int
}

// DefaultConfig returns production defaults: a sync every six hours, four
// concurrent items per feed, and a generous run timeout so slow feed
// hosts do not abort the whole pass.
func DefaultConfig() Config {
	return Config{
		CronSchedule:      "0 */6 * * *",
		Timezone:          "UTC",
		ScrapeParallelism: ingest.DefaultScrapeParallelism,
		IngestTimeout:     15 * time.Minute,
		HealthPort:        9091,
		TriggerPort:       8081,
	}
}

// LoadConfigFromEnv builds a Config from environment variables, falling
// back to defaults. Invalid values fail closed: a worker running on a
// mistyped schedule silently drifts, which is worse than refusing to
// start.
func LoadConfigFromEnv(logger *slog.Logger) (Config, error) {
	defaults := DefaultConfig()
	cfg := Config{
		CronSchedule:      config.GetEnvString("INGEST_CRON_SCHEDULE", defaults.CronSchedule),
		Timezone:          config.GetEnvString("INGEST_TIMEZONE", defaults.Timezone),
		ScrapeParallelism: config.GetEnvInt("INGEST_SCRAPE_PARALLELISM", defaults.ScrapeParallelism),
		IngestTimeout:     config.GetEnvDuration("INGEST_TIMEOUT", defaults.IngestTimeout),
		HealthPort:        config.GetEnvInt("WORKER_HEALTH_PORT", defaults.HealthPort),
		TriggerPort:       config.GetEnvInt("WORKER_TRIGGER_PORT", defaults.TriggerPort),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	logger.Info("worker configuration loaded",
		slog.String("cron_schedule", cfg.CronSchedule),
		slog.String("timezone", cfg.Timezone),
		slog.Int("scrape_parallelism", cfg.ScrapeParallelism),
		slog.Duration("ingest_timeout", cfg.IngestTimeout),
		slog.Int("health_port", cfg.HealthPort),
		slog.Int("trigger_port", cfg.TriggerPort))
	return cfg, nil
}

// Validate checks every field and aggregates failures.
func (c *Config) Validate() error {
	var errs []error

	if err := config.ValidateCronSchedule(c.CronSchedule); err != nil {
		errs = append(errs, fmt.Errorf("cron schedule: %w", err))
	}
	if err := config.ValidateTimezone(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("timezone: %w", err))
	}
	if err := config.ValidateIntRange(c.ScrapeParallelism, 1, 32); err != nil {
		errs = append(errs, fmt.Errorf("scrape parallelism: %w", err))
	}
	if err := config.ValidatePositiveDuration(c.IngestTimeout); err != nil {
		errs = append(errs, fmt.Errorf("ingest timeout: %w", err))
	}
	if err := config.ValidateIntRange(c.HealthPort, 1024, 65535); err != nil {
		errs = append(errs, fmt.Errorf("health port: %w", err))
	}
	if err := config.ValidateIntRange(c.TriggerPort, 1024, 65535); err != nil {
		errs = append(errs, fmt.Errorf("trigger port: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed: %v", errs)
	}
	return nil
}
