package ingest

import (
	"strings"

	"cfo-pulse/internal/domain/entity"
)

// categoryKeywords maps each category to its matching keywords. Matching
// is case-insensitive substring containment over title+description.
// The table is configuration data; the winning order is
// entity.CategoryPriority, never map iteration order.
var categoryKeywords = map[entity.Category][]string{
	entity.CategoryCapitalStrategy: {
		"rate", "inflation", "capital", "market", "macro", "liquidity", "monetary", "fiscal",
	},
	entity.CategoryPrivateMarkets: {
		"deal", "acquisition", "valuation", "lbo", "private equity", "funding", "term sheet", "merger", "buyout",
	},
	entity.CategoryOperational: {
		"productivity", "cost", "efficiency", "automation", "forecast", "transformation", "fp&a", "operations",
	},
	entity.CategoryLeadership: {
		"leadership", "culture", "behavior", "influence", "team", "decision", "mindset", "conscious",
	},
	entity.CategoryAfricaFinance: {
		"africa", "african", "sub-saharan", "nigeria", "kenya", "south africa",
	},
}

// relevanceScores is the static category → score table. Categories absent
// from the table score defaultRelevance.
var relevanceScores = map[entity.Category]int{
	entity.CategoryPrivateMarkets:  5,
	entity.CategoryAfricaFinance:   5,
	entity.CategoryCapitalStrategy: 4,
	entity.CategoryOperational:     4,
	entity.CategoryLeadership:      3,
	entity.CategoryUncategorized:   1,
}

const defaultRelevance = 2

// Categorize maps a title and description to a category. The first
// category in priority order with any keyword contained in the
// lower-cased text wins; no match resolves to Uncategorized, never an
// error.
func Categorize(title, description string) entity.Category {
	text := strings.ToLower(title + " " + description)

	for _, category := range entity.CategoryPriority {
		for _, keyword := range categoryKeywords[category] {
			if strings.Contains(text, keyword) {
				return category
			}
		}
	}
	return entity.CategoryUncategorized
}

// ScoreFor returns the relevance score for a category. Total: unknown
// categories fall back to the default score.
func ScoreFor(category entity.Category) int {
	if score, ok := relevanceScores[category]; ok {
		return score
	}
	return defaultRelevance
}
