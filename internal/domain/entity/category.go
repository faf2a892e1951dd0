package entity

// Category is the fixed topical taxonomy an article is classified into.
type Category string

const (
	CategoryCapitalStrategy Category = "Capital Strategy"
	CategoryPrivateMarkets  Category = "Private Markets & M&A"
	CategoryOperational     Category = "Operational Excellence"
	CategoryLeadership      Category = "Leadership & Conscious CFO"
	CategoryAfricaFinance   Category = "Africa Finance"
	CategoryUncategorized   Category = "Uncategorized"
)

// CategoryPriority is the classification priority order. When a text
// matches keywords from more than one category, the earliest entry wins.
// This order is a contract, not an artifact of map iteration.
var CategoryPriority = []Category{
	CategoryCapitalStrategy,
	CategoryPrivateMarkets,
	CategoryOperational,
	CategoryLeadership,
	CategoryAfricaFinance,
}

// Valid reports whether c is a member of the fixed taxonomy.
func (c Category) Valid() bool {
	switch c {
	case CategoryCapitalStrategy, CategoryPrivateMarkets, CategoryOperational,
		CategoryLeadership, CategoryAfricaFinance, CategoryUncategorized:
		return true
	}
	return false
}

// Categories returns every member of the taxonomy, Uncategorized last.
func Categories() []Category {
	out := make([]Category, 0, len(CategoryPriority)+1)
	out = append(out, CategoryPriority...)
	return append(out, CategoryUncategorized)
}
