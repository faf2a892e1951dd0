package ingest

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cfo-pulse/internal/domain/entity"
)

var testSource = entity.FeedSource{Name: "Example Wire", FeedURL: "https://example.com/rss"}

func TestNormalizeDefaults(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("missing title gets placeholder", func(t *testing.T) {
		a := normalize(RawItem{Link: "https://example.com/a"}, testSource, now)
		assert.Equal(t, entity.UntitledPlaceholder, a.Title)
	})

	t.Run("missing date defaults to ingestion time", func(t *testing.T) {
		a := normalize(RawItem{Link: "https://example.com/a", Title: "t"}, testSource, now)
		assert.Equal(t, now, a.PublishedAt)
	})

	t.Run("present date is kept", func(t *testing.T) {
		published := now.Add(-48 * time.Hour)
		a := normalize(RawItem{Link: "https://example.com/a", Title: "t", PublishedAt: &published}, testSource, now)
		assert.Equal(t, published, a.PublishedAt)
	})

	t.Run("source label copied", func(t *testing.T) {
		a := normalize(RawItem{Link: "https://example.com/a"}, testSource, now)
		assert.Equal(t, "Example Wire", a.Source)
	})

	t.Run("content used when description empty", func(t *testing.T) {
		a := normalize(RawItem{Link: "https://example.com/a", Content: "full content"}, testSource, now)
		assert.Equal(t, "full content", a.Description)
	})

	t.Run("missing link gets sentinel URL", func(t *testing.T) {
		a := normalize(RawItem{Title: "orphan item"}, testSource, now)
		assert.True(t, strings.HasPrefix(a.URL, "urn:feed-item:"), "got %q", a.URL)
	})
}

func TestSentinelLinkDeterministic(t *testing.T) {
	item := RawItem{Title: "same item", Description: "same body"}

	first := sentinelLink(testSource, item)
	second := sentinelLink(testSource, item)
	assert.Equal(t, first, second, "same content identity must dedup to one URL")

	other := sentinelLink(testSource, RawItem{Title: "different item", Description: "same body"})
	assert.NotEqual(t, first, other)

	otherSource := sentinelLink(entity.FeedSource{Name: "Other Wire"}, item)
	assert.NotEqual(t, first, otherSource)
}

func TestNormalizeTruncatesDescription(t *testing.T) {
	now := time.Now()

	long := strings.Repeat("a", entity.DescriptionMaxLen+500)
	a := normalize(RawItem{Link: "https://example.com/a", Description: long}, testSource, now)
	assert.Len(t, []rune(a.Description), entity.DescriptionMaxLen)

	exact := strings.Repeat("b", entity.DescriptionMaxLen)
	a = normalize(RawItem{Link: "https://example.com/a", Description: exact}, testSource, now)
	assert.Equal(t, exact, a.Description)

	// Truncation counts runes, not bytes.
	multibyte := strings.Repeat("é", entity.DescriptionMaxLen+10)
	a = normalize(RawItem{Link: "https://example.com/a", Description: multibyte}, testSource, now)
	assert.Len(t, []rune(a.Description), entity.DescriptionMaxLen)
}
