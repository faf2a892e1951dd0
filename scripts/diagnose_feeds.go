// Command diagnose_feeds checks every configured feed source and prints
// a JSON report: HTTP status, item count, newest publish date, and
// response time. Useful when a source stops producing articles and you
// need to know whether the feed moved, emptied, or started blocking us.
//
// Usage:
//
//	go run scripts/diagnose_feeds.go
//	FEED_SOURCES_FILE=sources.yaml go run scripts/diagnose_feeds.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/mmcdole/gofeed"

	"cfo-pulse/internal/config"
	"cfo-pulse/internal/domain/entity"
)

type feedDiagnostic struct {
	Name           string `json:"name"`
	URL            string `json:"url"`
	Status         string `json:"status"` // OK, HTTP_ERROR, PARSE_ERROR, EMPTY, TIMEOUT
	HTTPCode       int    `json:"http_code,omitempty"`
	ItemCount      int    `json:"item_count"`
	LatestDate     string `json:"latest_date,omitempty"`
	ErrorMessage   string `json:"error_message,omitempty"`
	ResponseTimeMs int64  `json:"response_time_ms"`
}

func main() {
	sources, err := config.LoadSources()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load sources: %v\n", err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: 20 * time.Second}
	results := make([]feedDiagnostic, 0, len(sources))
	for _, src := range sources {
		results = append(results, diagnose(client, src))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		fmt.Fprintf(os.Stderr, "encode report: %v\n", err)
		os.Exit(1)
	}

	for _, r := range results {
		if r.Status != "OK" {
			os.Exit(2)
		}
	}
}

func diagnose(client *http.Client, src entity.FeedSource) feedDiagnostic {
	diag := feedDiagnostic{Name: src.Name, URL: src.FeedURL}
	start := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.FeedURL, nil)
	if err != nil {
		diag.Status = "HTTP_ERROR"
		diag.ErrorMessage = err.Error()
		return diag
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36")

	resp, err := client.Do(req)
	diag.ResponseTimeMs = time.Since(start).Milliseconds()
	if err != nil {
		if ctx.Err() != nil {
			diag.Status = "TIMEOUT"
		} else {
			diag.Status = "HTTP_ERROR"
		}
		diag.ErrorMessage = err.Error()
		return diag
	}
	defer func() { _ = resp.Body.Close() }()

	diag.HTTPCode = resp.StatusCode
	if resp.StatusCode != http.StatusOK {
		diag.Status = "HTTP_ERROR"
		diag.ErrorMessage = resp.Status
		return diag
	}

	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		diag.Status = "PARSE_ERROR"
		diag.ErrorMessage = err.Error()
		return diag
	}

	diag.ItemCount = len(feed.Items)
	if diag.ItemCount == 0 {
		diag.Status = "EMPTY"
		return diag
	}

	var latest time.Time
	for _, item := range feed.Items {
		if item.PublishedParsed != nil && item.PublishedParsed.After(latest) {
			latest = *item.PublishedParsed
		}
	}
	if !latest.IsZero() {
		diag.LatestDate = latest.UTC().Format(time.RFC3339)
	}

	diag.Status = "OK"
	return diag
}
