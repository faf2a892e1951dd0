// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ingestion pipeline metrics.
var (
	// FeedFetchDuration measures how long one feed fetch+parse takes,
	// including retries.
	FeedFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "feed_fetch_duration_seconds",
			Help:    "Feed fetch and parse duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	// FeedFetchErrorsTotal counts terminal feed fetch failures
	// (all retry attempts exhausted).
	FeedFetchErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_fetch_errors_total",
			Help: "Total number of feed fetches that exhausted all attempts",
		},
		[]string{"source"},
	)

	// IngestItemsTotal counts feed items entering the pipeline.
	IngestItemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ingest_items_total",
			Help: "Total number of feed items processed by the pipeline",
		},
		[]string{"source"},
	)

	// IngestItemErrorsTotal counts per-item processing failures.
	IngestItemErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ingest_item_errors_total",
			Help: "Total number of items that failed processing",
		},
		[]string{"source", "stage"},
	)

	// ArticlesUpsertedTotal counts idempotent upserts by outcome.
	ArticlesUpsertedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "articles_upserted_total",
			Help: "Total number of article upserts",
		},
		[]string{"outcome"},
	)

	// ImageResolvedTotal counts image resolution results by tier.
	// Tier is "feed", "inline", "scrape" or "none".
	ImageResolvedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "image_resolved_total",
			Help: "Total number of image resolution attempts by winning tier",
		},
		[]string{"tier"},
	)

	// PageScrapeDuration measures the guarded page scrape latency.
	PageScrapeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "page_scrape_duration_seconds",
			Help:    "Page scrape duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// IngestRunDuration measures full ingestion run duration.
	IngestRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ingest_run_duration_seconds",
			Help:    "Full ingestion run duration in seconds",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800},
		},
	)
)

// Read API metrics.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)
