package ingest

import (
	"fmt"
	"hash/fnv"
	"time"

	"cfo-pulse/internal/domain/entity"
	"cfo-pulse/internal/utils/text"
)

// RawItem is the unnormalized item emitted by feed parsing. It is
// transient: discarded once a NormalizedArticle has been assembled.
type RawItem struct {
	Title             string
	Link              string
	Description       string
	Content           string
	PublishedAt       *time.Time // nil when the feed value is missing or unparsable
	EnclosureURL      string
	MediaThumbnailURL string
	MediaContentURL   string
}

// normalize assembles an article from a raw item, applying the local
// defaulting rules: placeholder title, sentinel link, description
// truncation, and ingestion-time fallback for missing publish dates.
// Category and relevance are filled in by the caller after
// classification.
func normalize(item RawItem, source entity.FeedSource, now time.Time) *entity.Article {
	title := item.Title
	if title == "" {
		title = entity.UntitledPlaceholder
	}

	link := item.Link
	if link == "" {
		link = sentinelLink(source, item)
	}

	description := item.Description
	if description == "" {
		description = item.Content
	}
	description = text.Truncate(description, entity.DescriptionMaxLen)

	publishedAt := now
	if item.PublishedAt != nil {
		publishedAt = *item.PublishedAt
	}

	return &entity.Article{
		Title:       title,
		URL:         link,
		Source:      source.Name,
		Description: description,
		PublishedAt: publishedAt,
	}
}

// sentinelLink builds a deterministic stand-in URL for items carrying
// neither a link nor a GUID. Hashing the content identity keeps the
// URL-keyed upsert idempotent across syncs, so the item persists once
// instead of being dropped.
func sentinelLink(source entity.FeedSource, item RawItem) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(source.Name))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(item.Title))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(item.Description))
	return fmt.Sprintf("urn:feed-item:%016x", h.Sum64())
}
