// Package article provides the read-side use cases over stored articles:
// listing, fetching, and the reader-owned saved/read flags.
package article

import (
	"context"
	"fmt"

	"cfo-pulse/internal/common/pagination"
	"cfo-pulse/internal/domain/entity"
	"cfo-pulse/internal/repository"
)

// Service exposes the article reading operations. Business logic is
// thin: validation and delegation to the repository.
type Service struct {
	Repo repository.ArticleRepository
}

// ListFilter narrows a listing. Empty fields mean "all".
type ListFilter struct {
	Category string
	Saved    bool
}

// PaginatedResult bundles one page of articles with its metadata.
type PaginatedResult struct {
	Data       []*entity.Article
	Pagination pagination.Metadata
}

// ListPaginated returns one page of articles newest-first. A non-empty
// category must name a known category; Saved restricts to saved rows.
func (s *Service) ListPaginated(ctx context.Context, filter ListFilter, params pagination.Params) (*PaginatedResult, error) {
	repoFilter := repository.ArticleFilter{}
	if filter.Category != "" {
		category := entity.Category(filter.Category)
		if !category.Valid() {
			return nil, ErrUnknownCategory
		}
		repoFilter.Category = &category
	}
	if filter.Saved {
		saved := true
		repoFilter.Saved = &saved
	}

	total, err := s.Repo.Count(ctx, repoFilter)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	articles, err := s.Repo.ListPaginated(ctx, repoFilter, params.Offset(), params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	return &PaginatedResult{
		Data:       articles,
		Pagination: pagination.NewMetadata(total, params),
	}, nil
}

// Get returns one article by id.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}
	article, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article %d: %w", id, err)
	}
	return article, nil
}

// ToggleSaved flips the article's saved flag and returns the new state.
func (s *Service) ToggleSaved(ctx context.Context, id int64) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}
	article, err := s.Repo.ToggleSaved(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("toggle saved %d: %w", id, err)
	}
	return article, nil
}

// MarkRead marks the article as read. Marking an already-read article is
// a no-op, not an error.
func (s *Service) MarkRead(ctx context.Context, id int64) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}
	article, err := s.Repo.MarkRead(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("mark read %d: %w", id, err)
	}
	return article, nil
}

// Stats returns store-wide aggregates for the reader's overview.
func (s *Service) Stats(ctx context.Context) (*repository.ArticleStats, error) {
	stats, err := s.Repo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("article stats: %w", err)
	}
	return stats, nil
}
