// Package repository defines the persistence ports consumed by the use
// case layer. Implementations live under internal/infra/adapter.
package repository

import (
	"context"

	"cfo-pulse/internal/domain/entity"
)

// ArticleFilter narrows list and count queries. Nil fields are not applied.
type ArticleFilter struct {
	Category *entity.Category
	Saved    *bool
}

// ArticleStats summarizes the store for the read API.
type ArticleStats struct {
	Total      int64
	Saved      int64
	Unread     int64
	ByCategory map[entity.Category]int64
}

// ArticleRepository is the persistence port for articles.
//
// Upsert is keyed by URL and must be merge-style: re-ingesting a known
// URL updates content fields (title, description, category, image,
// relevance, published date) but never the reader-owned is_read/is_saved
// flags. It must be safe under concurrent invocation across different
// URLs and atomic per URL.
type ArticleRepository interface {
	// Upsert inserts or updates the article keyed by URL.
	// Returns true when a new row was created.
	Upsert(ctx context.Context, article *entity.Article) (bool, error)

	// ListPaginated returns articles newest-first, filtered and windowed.
	ListPaginated(ctx context.Context, filter ArticleFilter, offset, limit int) ([]*entity.Article, error)

	// Count returns the number of articles matching the filter.
	Count(ctx context.Context, filter ArticleFilter) (int64, error)

	// Get returns the article by id, or entity.ErrArticleNotFound.
	Get(ctx context.Context, id int64) (*entity.Article, error)

	// ToggleSaved flips is_saved and returns the updated article.
	ToggleSaved(ctx context.Context, id int64) (*entity.Article, error)

	// MarkRead sets is_read and returns the updated article.
	MarkRead(ctx context.Context, id int64) (*entity.Article, error)

	// Stats returns store-wide aggregates.
	Stats(ctx context.Context) (*ArticleStats, error)
}
