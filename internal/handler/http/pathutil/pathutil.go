// Package pathutil provides small helpers for URL path handling.
package pathutil

import (
	"fmt"
	"strconv"
	"strings"
)

// ExtractID parses the numeric ID following prefix in path, e.g.
// ExtractID("/articles/42", "/articles/") returns 42. Trailing path
// segments after the ID are rejected.
func ExtractID(path, prefix string) (int64, error) {
	rest := strings.TrimPrefix(path, prefix)
	if rest == path || rest == "" {
		return 0, fmt.Errorf("invalid path: missing ID")
	}
	// Allow a single trailing action segment, e.g. /articles/42/save.
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid path: ID must be a positive integer")
	}
	return id, nil
}

// NormalizePath collapses numeric path segments to :id so metrics labels
// keep bounded cardinality, and strips any query string.
func NormalizePath(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if seg == "" {
			continue
		}
		if _, err := strconv.ParseInt(seg, 10, 64); err == nil {
			segments[i] = ":id"
		}
	}
	return strings.Join(segments, "/")
}
