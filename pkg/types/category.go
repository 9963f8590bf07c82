package types

// Category is the closed taxonomy tag assigned to every Topic. The ingest
// loader derives it from the topic file's subdirectory when a record does
// not declare one.
type Category string

// The category taxonomy. Adding a value here is a deliberate catalog-wide
// decision; unknown tags are rejected at validation time.
const (
	CategoryFundamentals Category = "fundamentals"
	CategoryTransactions Category = "transactions"
	CategoryIndexing     Category = "indexing"
	CategoryConcurrency  Category = "concurrency"
	CategoryStorage      Category = "storage"
	CategoryDistributed  Category = "distributed"
	CategoryNetworking   Category = "networking"
	CategorySecurity     Category = "security"
	CategoryPatterns     Category = "patterns"
	CategoryPerformance  Category = "performance"
)

// validCategories is the set of recognized category values.
var validCategories = map[Category]bool{
	CategoryFundamentals: true,
	CategoryTransactions: true,
	CategoryIndexing:     true,
	CategoryConcurrency:  true,
	CategoryStorage:      true,
	CategoryDistributed:  true,
	CategoryNetworking:   true,
	CategorySecurity:     true,
	CategoryPatterns:     true,
	CategoryPerformance:  true,
}

// AllCategories lists the taxonomy in display order.
var AllCategories = []Category{
	CategoryFundamentals,
	CategoryTransactions,
	CategoryIndexing,
	CategoryConcurrency,
	CategoryStorage,
	CategoryDistributed,
	CategoryNetworking,
	CategorySecurity,
	CategoryPatterns,
	CategoryPerformance,
}

// IsValidCategory reports whether the given tag is part of the taxonomy.
func IsValidCategory(c Category) bool {
	return validCategories[c]
}
