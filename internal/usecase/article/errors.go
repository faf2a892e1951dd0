package article

import "errors"

// Sentinel errors for the article read operations.
var (
	// ErrInvalidArticleID indicates a non-positive article id.
	ErrInvalidArticleID = errors.New("invalid article ID")

	// ErrUnknownCategory indicates a category filter outside the fixed
	// taxonomy.
	ErrUnknownCategory = errors.New("unknown category")
)
