// Package entity defines the core domain entities for the application.
// It contains the fundamental business objects such as Article, FeedSource
// and the category taxonomy, along with their validation rules.
package entity

import (
	"time"

	"cfo-pulse/internal/utils/text"
)

// DescriptionMaxLen is the maximum persisted description length in characters.
// Longer descriptions are truncated during normalization.
const DescriptionMaxLen = 1200

// UntitledPlaceholder is stored when a feed item carries no title.
const UntitledPlaceholder = "(untitled)"

// Article represents a normalized news article in the system.
// URL is the deduplication key: re-ingesting the same URL updates the
// content fields but never the reader-owned flags (IsRead, IsSaved).
type Article struct {
	ID             int64
	Title          string
	URL            string
	Source         string
	Category       Category
	Description    string
	Image          *string // nil when no image could be resolved
	PublishedAt    time.Time
	RelevanceScore int
	IsRead         bool
	IsSaved        bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate checks that the article satisfies the persistence invariants.
func (a *Article) Validate() error {
	if a.URL == "" {
		return ErrEmptyURL
	}
	if !a.Category.Valid() {
		return ErrInvalidCategory
	}
	if a.RelevanceScore < 1 || a.RelevanceScore > 5 {
		return ErrInvalidRelevance
	}
	if text.CountRunes(a.Description) > DescriptionMaxLen {
		return ErrDescriptionTooLong
	}
	return nil
}
