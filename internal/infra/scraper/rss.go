// Package scraper provides implementations for fetching RSS/Atom feeds
// and scraping article pages. It uses gofeed for feed parsing and goquery
// for HTML parsing, with retry and circuit breaker reliability patterns.
package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"cfo-pulse/internal/domain/entity"
	"cfo-pulse/internal/resilience/retry"
	"cfo-pulse/internal/usecase/ingest"
)

const (
	// browserUserAgent mimics a desktop browser. Several feed hosts
	// reject obvious bot agents outright.
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

	acceptHeader = "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8"

	// FeedFetchTimeout bounds one feed request.
	FeedFetchTimeout = 20 * time.Second
)

// RSSFetcher implements ingest.FeedFetcher using the gofeed library.
// Transient failures are retried with linearly increasing backoff; the
// error returned after the last attempt is terminal and the caller
// treats the source as yielding zero items.
type RSSFetcher struct {
	client      *http.Client
	retryConfig retry.Config
}

// NewRSSFetcher creates an RSSFetcher with the given HTTP client. The
// client should carry the per-request timeout (FeedFetchTimeout).
func NewRSSFetcher(client *http.Client) *RSSFetcher {
	return &RSSFetcher{
		client:      client,
		retryConfig: retry.FeedFetchConfig(),
	}
}

// Fetch retrieves and parses one feed, returning its items in raw form.
func (f *RSSFetcher) Fetch(ctx context.Context, source entity.FeedSource) ([]ingest.RawItem, error) {
	var items []ingest.RawItem

	logger := slog.Default().With(
		slog.String("source", source.Name),
		slog.String("feed_url", source.FeedURL))
	retryErr := retry.WithBackoff(ctx, f.retryConfig, logger, func() error {
		fetched, err := f.doFetch(ctx, source.FeedURL)
		if err != nil {
			return err
		}
		items = fetched
		return nil
	})
	if retryErr != nil {
		return nil, retryErr
	}
	return items, nil
}

// doFetch performs a single fetch+parse attempt.
func (f *RSSFetcher) doFetch(ctx context.Context, feedURL string) ([]ingest.RawItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", acceptHeader)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &retry.HTTPError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("unexpected status fetching feed: %s", resp.Status),
		}
	}

	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	items := make([]ingest.RawItem, 0, len(feed.Items))
	for _, it := range feed.Items {
		items = append(items, toRawItem(it))
	}
	return items, nil
}

// toRawItem maps a gofeed item onto the pipeline's raw shape, pulling the
// media extension URLs the image resolver's first tier wants.
func toRawItem(it *gofeed.Item) ingest.RawItem {
	raw := ingest.RawItem{
		Title:       it.Title,
		Link:        it.Link,
		Description: it.Description,
		Content:     it.Content,
		PublishedAt: it.PublishedParsed,
	}
	if raw.Link == "" {
		raw.Link = it.GUID
	}

	for _, enc := range it.Enclosures {
		if enc != nil && enc.URL != "" {
			raw.EnclosureURL = enc.URL
			break
		}
	}
	raw.MediaThumbnailURL = mediaExtensionURL(it, "thumbnail")
	raw.MediaContentURL = mediaExtensionURL(it, "content")
	return raw
}

// mediaExtensionURL extracts the url attribute of a media:* element,
// e.g. <media:thumbnail url="..."/>.
func mediaExtensionURL(it *gofeed.Item, element string) string {
	media, ok := it.Extensions["media"]
	if !ok {
		return ""
	}
	for _, ext := range media[element] {
		if u := ext.Attrs["url"]; u != "" {
			return u
		}
	}
	return ""
}

// NewFeedHTTPClient creates the HTTP client used for feed fetching.
func NewFeedHTTPClient() *http.Client {
	return &http.Client{
		Timeout: FeedFetchTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}
