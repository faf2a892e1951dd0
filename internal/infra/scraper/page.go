package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"

	"cfo-pulse/internal/observability/metrics"
	"cfo-pulse/internal/resilience/circuitbreaker"
	"cfo-pulse/internal/resilience/retry"
)

const (
	// PageScrapeTimeout bounds one page request. Scraping is a
	// best-effort fallback, so it gets a tighter budget than feeds.
	PageScrapeTimeout = 10 * time.Second

	maxRedirects = 3

	// maxPageBody caps how much HTML we read per page. The image meta
	// tags live in <head>, so 2 MiB is plenty.
	maxPageBody = 2 << 20
)

// PageScraper fetches an article page and extracts a representative
// image URL. It implements ingest.PageScraper. Calls flow through a
// circuit breaker so a misbehaving site cannot slow every sync run.
type PageScraper struct {
	client  *http.Client
	breaker *circuitbreaker.CircuitBreaker
}

// NewPageScraper creates a PageScraper with its own bounded HTTP client.
func NewPageScraper() *PageScraper {
	return &PageScraper{
		client: &http.Client{
			Timeout: PageScrapeTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
		breaker: circuitbreaker.New(circuitbreaker.PageScrapeConfig()),
	}
}

// ResolveImage fetches pageURL and returns the best image candidate:
// og:image, then twitter:image, then the first <img> with a usable src.
// A readable page with no usable image returns ("", nil); errors are
// reserved for fetch and parse failures, so an imageless page never
// counts against the circuit breaker.
func (s *PageScraper) ResolveImage(ctx context.Context, pageURL string) (string, error) {
	start := time.Now()
	result, err := s.breaker.Execute(func() (any, error) {
		return s.scrape(ctx, pageURL)
	})
	metrics.RecordPageScrape(time.Since(start))
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

func (s *PageScraper) scrape(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Referer", "https://www.google.com/")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &retry.HTTPError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("unexpected status fetching page: %s", resp.Status),
		}
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxPageBody))
	if err != nil {
		return "", fmt.Errorf("parse page: %w", err)
	}

	metaCandidates := []string{
		metaContent(doc, `meta[property="og:image"]`),
		metaContent(doc, `meta[name="twitter:image"]`),
	}
	for _, candidate := range metaCandidates {
		if resolved, ok := resolvePageImage(candidate, pageURL); ok {
			return resolved, nil
		}
	}

	var firstImg string
	doc.Find("img[src]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		src, _ := sel.Attr("src")
		if resolved, ok := resolvePageImage(src, pageURL); ok {
			firstImg = resolved
			return false
		}
		return true
	})
	return firstImg, nil
}

func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return content
}

// resolvePageImage normalizes a candidate against the page URL and
// rejects non-http(s) results such as data: URIs. Unusable candidates
// report false so the caller moves on to the next one.
func resolvePageImage(raw, pageURL string) (string, bool) {
	if raw == "" {
		return "", false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	if u.IsAbs() {
		if u.Scheme != "http" && u.Scheme != "https" {
			return "", false
		}
		return u.String(), true
	}
	base, err := url.Parse(pageURL)
	if err != nil || !base.IsAbs() {
		return "", false
	}
	return base.ResolveReference(u).String(), true
}
