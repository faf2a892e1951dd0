package metrics

import (
	"strconv"
	"time"
)

// RecordFeedFetch records the duration of one feed fetch, including retries.
func RecordFeedFetch(source string, duration time.Duration) {
	FeedFetchDuration.WithLabelValues(source).Observe(duration.Seconds())
}

// RecordFeedFetchError records a terminal feed fetch failure.
func RecordFeedFetchError(source string) {
	FeedFetchErrorsTotal.WithLabelValues(source).Inc()
}

// RecordItemProcessed records one feed item entering the pipeline.
func RecordItemProcessed(source string) {
	IngestItemsTotal.WithLabelValues(source).Inc()
}

// RecordItemError records a per-item processing failure at a pipeline stage.
// Stage is one of "normalize", "image", "persist".
func RecordItemError(source, stage string) {
	IngestItemErrorsTotal.WithLabelValues(source, stage).Inc()
}

// RecordUpsert records an article upsert. Outcome is "inserted",
// "updated" or "error".
func RecordUpsert(outcome string) {
	ArticlesUpsertedTotal.WithLabelValues(outcome).Inc()
}

// RecordImageResolved records which tier produced an image, or "none".
func RecordImageResolved(tier string) {
	ImageResolvedTotal.WithLabelValues(tier).Inc()
}

// RecordPageScrape records the latency of one guarded page scrape.
func RecordPageScrape(duration time.Duration) {
	PageScrapeDuration.Observe(duration.Seconds())
}

// RecordIngestRun records the duration of a full ingestion run.
func RecordIngestRun(duration time.Duration) {
	IngestRunDuration.Observe(duration.Seconds())
}

// RecordHTTPRequest records one served API request. Path should already
// be normalized to a bounded set of templates.
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}
