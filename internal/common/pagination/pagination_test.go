package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQueryParams(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    Params
		wantErr bool
	}{
		{"defaults", "", Params{Page: 1, Limit: 20}, false},
		{"explicit values", "?page=3&limit=50", Params{Page: 3, Limit: 50}, false},
		{"max limit", "?limit=100", Params{Page: 1, Limit: 100}, false},
		{"limit above max", "?limit=101", Params{}, true},
		{"zero page", "?page=0", Params{}, true},
		{"negative page", "?page=-2", Params{}, true},
		{"non-numeric page", "?page=abc", Params{}, true},
		{"zero limit", "?limit=0", Params{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/articles"+tt.query, nil)
			got, err := ParseQueryParams(r)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 20, Params{Page: 2, Limit: 20}.Offset())
	assert.Equal(t, 20, Params{Page: 3, Limit: 10}.Offset())
}

func TestNewMetadata(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		limit     int
		wantPages int
	}{
		{"empty set still one page", 0, 20, 1},
		{"partial page", 10, 20, 1},
		{"exact fit", 20, 20, 1},
		{"one over", 21, 20, 2},
		{"many pages", 100, 20, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewMetadata(tt.total, Params{Page: 1, Limit: tt.limit})
			assert.Equal(t, tt.wantPages, meta.TotalPages)
			assert.Equal(t, tt.total, meta.Total)
		})
	}
}
