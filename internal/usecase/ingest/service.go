// Package ingest implements the feed ingestion pipeline: retry-tolerant
// feed fetching, tiered image resolution, rule-based classification and
// idempotent persistence keyed by article URL.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"cfo-pulse/internal/domain/entity"
	"cfo-pulse/internal/observability/metrics"
	"cfo-pulse/internal/repository"
)

// DefaultScrapeParallelism bounds concurrent scrape-bearing item tasks
// per feed. Page scraping is the expensive, rate-limit-sensitive
// operation; unbounded parallelism against third-party sites risks
// throttling or blocking.
const DefaultScrapeParallelism = 4

// FeedFetcher retrieves and parses one feed's item list.
type FeedFetcher interface {
	Fetch(ctx context.Context, source entity.FeedSource) ([]RawItem, error)
}

// Service drives the ingestion pipeline. Feeds are processed strictly
// sequentially in registry order; within a feed, item tasks fan out
// through the Gate. A single item's failure never affects its siblings
// or aborts the feed.
type Service struct {
	ArticleRepo repository.ArticleRepository
	FeedFetcher FeedFetcher
	Images      *ImageResolver
	Gate        *Gate
}

// NewService creates an ingestion service. gateCapacity bounds per-feed
// scrape concurrency; values below 1 fall back to the default.
func NewService(articleRepo repository.ArticleRepository, feedFetcher FeedFetcher, images *ImageResolver, gateCapacity int) *Service {
	if gateCapacity < 1 {
		gateCapacity = DefaultScrapeParallelism
	}
	return &Service{
		ArticleRepo: articleRepo,
		FeedFetcher: feedFetcher,
		Images:      images,
		Gate:        NewGate(gateCapacity),
	}
}

// Stats summarizes one ingestion run.
type Stats struct {
	Sources     int
	Items       int64
	Inserted    int64
	Updated     int64
	ItemErrors  int64
	FeedErrors  int64
	ImageFeed   int64
	ImageInline int64
	ImageScrape int64
	ImageNone   int64
	Duration    time.Duration
}

// Run ingests every source in order and returns run statistics. The
// only error it returns is context cancellation; every other failure is
// logged and absorbed, so a persistently broken source can never abort
// the run.
func (s *Service) Run(ctx context.Context, sources []entity.FeedSource) (*Stats, error) {
	logger := slog.Default()
	start := time.Now()
	stats := &Stats{Sources: len(sources)}

	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		s.processSource(ctx, src, stats)
	}

	stats.Duration = time.Since(start)
	metrics.RecordIngestRun(stats.Duration)
	logger.Info("ingestion run completed",
		slog.Int("sources", stats.Sources),
		slog.Int64("items", stats.Items),
		slog.Int64("inserted", stats.Inserted),
		slog.Int64("updated", stats.Updated),
		slog.Int64("item_errors", stats.ItemErrors),
		slog.Int64("feed_errors", stats.FeedErrors),
		slog.Duration("duration", stats.Duration),
	)
	return stats, nil
}

// processSource fetches one feed and fans its items out through the
// gate, waiting for all of them before returning so that peak outbound
// concurrency stays bounded by the gate regardless of feed count.
func (s *Service) processSource(ctx context.Context, src entity.FeedSource, stats *Stats) {
	logger := slog.Default()
	fetchStart := time.Now()

	items, err := s.FeedFetcher.Fetch(ctx, src)
	metrics.RecordFeedFetch(src.Name, time.Since(fetchStart))
	if err != nil {
		// Terminal: all attempts exhausted. Zero items is a normal,
		// non-fatal outcome for this source.
		atomic.AddInt64(&stats.FeedErrors, 1)
		metrics.RecordFeedFetchError(src.Name)
		logger.Error("feed fetch failed after all attempts, skipping source",
			slog.String("source", src.Name),
			slog.String("feed_url", src.FeedURL),
			slog.Any("error", err))
		return
	}

	if len(items) == 0 {
		logger.Info("feed is empty",
			slog.String("source", src.Name),
			slog.String("feed_url", src.FeedURL))
		return
	}

	eg, egCtx := errgroup.WithContext(ctx)
	for _, rawItem := range items {
		item := rawItem
		atomic.AddInt64(&stats.Items, 1)
		metrics.RecordItemProcessed(src.Name)

		eg.Go(func() error {
			if err := s.Gate.Admit(egCtx); err != nil {
				// Only context cancellation gets past the gate.
				return err
			}
			defer s.Gate.Release()

			if err := s.processItem(egCtx, src, item, stats); err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				atomic.AddInt64(&stats.ItemErrors, 1)
				logger.Warn("item processing failed, skipping",
					slog.String("source", src.Name),
					slog.String("url", item.Link),
					slog.Any("error", err))
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		logger.Warn("source processing interrupted",
			slog.String("source", src.Name),
			slog.Any("error", err))
		return
	}

	logger.Info("source ingested",
		slog.String("source", src.Name),
		slog.Int("items", len(items)))
}

// processItem normalizes, classifies, resolves an image and upserts one
// feed item.
func (s *Service) processItem(ctx context.Context, src entity.FeedSource, item RawItem, stats *Stats) error {
	article := normalize(item, src, time.Now())
	article.Category = Categorize(article.Title, article.Description)
	article.RelevanceScore = ScoreFor(article.Category)

	if err := article.Validate(); err != nil {
		metrics.RecordItemError(src.Name, "normalize")
		return fmt.Errorf("normalize %s: %w", item.Link, err)
	}

	img, tier := s.Images.Resolve(ctx, item)
	metrics.RecordImageResolved(tier)
	switch tier {
	case TierFeed:
		atomic.AddInt64(&stats.ImageFeed, 1)
	case TierInline:
		atomic.AddInt64(&stats.ImageInline, 1)
	case TierScrape:
		atomic.AddInt64(&stats.ImageScrape, 1)
	default:
		atomic.AddInt64(&stats.ImageNone, 1)
	}
	if img != "" {
		article.Image = &img
	}

	inserted, err := s.ArticleRepo.Upsert(ctx, article)
	if err != nil {
		metrics.RecordUpsert("error")
		metrics.RecordItemError(src.Name, "persist")
		return fmt.Errorf("upsert %s: %w", article.URL, err)
	}
	if inserted {
		atomic.AddInt64(&stats.Inserted, 1)
		metrics.RecordUpsert("inserted")
	} else {
		atomic.AddInt64(&stats.Updated, 1)
		metrics.RecordUpsert("updated")
	}
	return nil
}
