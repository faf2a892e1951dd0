package entity

import "errors"

// Domain validation errors. Handlers map these to 4xx responses; the
// ingestion pipeline treats them as per-item failures.
var (
	ErrEmptyURL           = errors.New("article url is required")
	ErrInvalidCategory    = errors.New("category is not a member of the taxonomy")
	ErrInvalidRelevance   = errors.New("relevance score must be between 1 and 5")
	ErrDescriptionTooLong = errors.New("description exceeds maximum length")
	ErrArticleNotFound    = errors.New("article not found")
)
