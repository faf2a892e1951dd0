package ingest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"cfo-pulse/internal/domain/entity"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		want        entity.Category
	}{
		{"capital strategy keyword", "Inflation cools in Q3", "", entity.CategoryCapitalStrategy},
		{"private markets keyword", "Mega merger announced", "a buyout for the ages", entity.CategoryPrivateMarkets},
		{"operational keyword", "FP&A teams adopt automation", "", entity.CategoryOperational},
		{"leadership keyword", "The conscious CFO", "mindset shifts for finance chiefs", entity.CategoryLeadership},
		{"africa keyword", "Banking growth in Kenya", "", entity.CategoryAfricaFinance},
		{"keyword in description only", "Quarterly update", "liquidity conditions tightened", entity.CategoryCapitalStrategy},
		{"case insensitive", "INFLATION WATCH", "", entity.CategoryCapitalStrategy},
		{"multi-word keyword", "Sponsors eye private equity exits", "", entity.CategoryPrivateMarkets},
		{"no keyword", "Weather report for Tuesday", "sunny with light winds", entity.CategoryUncategorized},
		{"empty input", "", "", entity.CategoryUncategorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.title, tt.description))
		})
	}
}

// A text matching two categories resolves to the one earlier in the
// priority order: "inflation" (Capital Strategy) beats "africa"
// (Africa Finance) because Capital Strategy is evaluated first.
func TestCategorizePriorityOrder(t *testing.T) {
	got := Categorize("Inflation pressures across Africa", "")
	assert.Equal(t, entity.CategoryCapitalStrategy, got)

	// Reversed word order changes nothing: priority is positional in the
	// category list, not in the text.
	got = Categorize("Africa battles inflation", "")
	assert.Equal(t, entity.CategoryCapitalStrategy, got)
}

func TestScoreFor(t *testing.T) {
	want := map[entity.Category]int{
		entity.CategoryPrivateMarkets:  5,
		entity.CategoryAfricaFinance:   5,
		entity.CategoryCapitalStrategy: 4,
		entity.CategoryOperational:     4,
		entity.CategoryLeadership:      3,
		entity.CategoryUncategorized:   1,
	}

	got := map[entity.Category]int{}
	for c := range want {
		got[c] = ScoreFor(c)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("relevance table mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, defaultRelevance, ScoreFor(entity.Category("Something New")))
}

func TestEveryPriorityCategoryHasKeywords(t *testing.T) {
	for _, c := range entity.CategoryPriority {
		assert.NotEmpty(t, categoryKeywords[c], string(c))
	}
	// Uncategorized is the default, never matched by keyword.
	assert.Empty(t, categoryKeywords[entity.CategoryUncategorized])
}
