// Package pagination provides shared page/limit handling for list
// endpoints.
package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Params are the parsed pagination query parameters.
type Params struct {
	Page  int // 1-based
	Limit int
}

// Metadata is the pagination block included in list responses.
type Metadata struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// ParseQueryParams reads page and limit from the request query, applying
// defaults for absent values and rejecting invalid ones.
func ParseQueryParams(r *http.Request) (Params, error) {
	params := Params{Page: DefaultPage, Limit: DefaultLimit}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return params, fmt.Errorf("invalid query parameter: page must be a positive integer")
		}
		params.Page = page
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > MaxLimit {
			return params, fmt.Errorf("invalid query parameter: limit must be between 1 and %d", MaxLimit)
		}
		params.Limit = limit
	}

	return params, nil
}

// Offset converts the 1-based page to a database offset.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// NewMetadata computes the response metadata for a result set. An empty
// set still reports one page.
func NewMetadata(total int64, params Params) Metadata {
	totalPages := 1
	if total > 0 {
		totalPages = int((total + int64(params.Limit) - 1) / int64(params.Limit))
	}
	return Metadata{
		Total:      total,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: totalPages,
	}
}
