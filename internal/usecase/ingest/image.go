package ingest

import (
	"context"
	"log/slog"
	"net/url"
	"regexp"
)

// Image resolution tiers, in the order they are tried.
const (
	TierFeed   = "feed"   // enclosure / media:thumbnail / media:content
	TierInline = "inline" // <img> inside the feed-supplied HTML content
	TierScrape = "scrape" // guarded fetch of the article page
	TierNone   = "none"
)

// PageScraper fetches an article page and extracts a representative image
// URL from its metadata. An empty string with a nil error means the page
// was readable but carried no usable image.
type PageScraper interface {
	ResolveImage(ctx context.Context, pageURL string) (string, error)
}

// imgSrcPattern extracts the src attribute of the first <img> tag in an
// HTML fragment. Feed content is routinely truncated mid-tag, so a
// pattern match is deliberate here; full documents go through goquery in
// the scrape tier.
var imgSrcPattern = regexp.MustCompile(`(?i)<img[^>]+src\s*=\s*["']?([^"'\s>]+)`)

// ImageResolver produces a best-effort representative image URL for a
// feed item via a tiered, short-circuiting fallback chain. Absence of an
// image is a valid terminal value, never an error.
type ImageResolver struct {
	Scraper PageScraper
}

// Resolve returns the image URL and the tier that produced it, or
// ("", TierNone). The scrape tier is only attempted when the cheaper
// tiers missed and the item has a page link.
func (r *ImageResolver) Resolve(ctx context.Context, item RawItem) (string, string) {
	if img, ok := normalizeImageURL(feedImage(item), item.Link); ok {
		return img, TierFeed
	}
	if img, ok := normalizeImageURL(inlineImage(item), item.Link); ok {
		return img, TierInline
	}

	if r.Scraper == nil || item.Link == "" {
		return "", TierNone
	}

	img, err := r.Scraper.ResolveImage(ctx, item.Link)
	if err != nil {
		slog.Warn("page scrape for image failed",
			slog.String("url", item.Link),
			slog.Any("error", err))
		return "", TierNone
	}
	if img, ok := normalizeImageURL(img, item.Link); ok {
		return img, TierScrape
	}
	return "", TierNone
}

// feedImage checks the feed-embedded media references in priority order:
// enclosure, media:thumbnail, media:content.
func feedImage(item RawItem) string {
	if item.EnclosureURL != "" {
		return item.EnclosureURL
	}
	if item.MediaThumbnailURL != "" {
		return item.MediaThumbnailURL
	}
	return item.MediaContentURL
}

// contentFields returns the item's HTML content candidates in lookup
// order. The same logical value arrives under different field names
// depending on the feed dialect.
func contentFields(item RawItem) []string {
	return []string{item.Content, item.Description}
}

// inlineImage scans the item's HTML content fields for an <img> tag and
// returns its src, or empty.
func inlineImage(item RawItem) string {
	for _, html := range contentFields(item) {
		if html == "" {
			continue
		}
		if m := imgSrcPattern.FindStringSubmatch(html); m != nil {
			return m[1]
		}
	}
	return ""
}

// normalizeImageURL resolves a discovered image URL to absolute form
// against the item's page URL. Malformed candidates are treated as
// not-found so the chain continues.
func normalizeImageURL(raw, base string) (string, bool) {
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

	baseURL, err := url.Parse(base)
	if err != nil || !baseURL.IsAbs() {
		return "", false
	}
	return baseURL.ResolveReference(u).String(), true
}
