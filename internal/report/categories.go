package report

import (
	"time"

	"golang.org/x/exp/slices"
)

// GetAvailableCategories returns the categories that have at least one
// transaction within the date filter, without duplicates and sorted with
// SortCategories.
func GetAvailableCategories(funds []Fund, f *Filters, targetTime time.Time) []CategoryCode {
	seen := make(map[CategoryCode]bool)
	codes := make([]CategoryCode, 0)

	for _, fund := range funds {
		for _, category := range fund.Categories {
			if seen[category.Category] {
				continue
			}

			if hasTransactionInRange(category, f, targetTime) {
				seen[category.Category] = true
				codes = append(codes, category.Category)
			}
		}
	}

	return SortCategories(codes)
}

func hasTransactionInRange(category Category, f *Filters, targetTime time.Time) bool {
	for _, subcategory := range category.Subcategories {
		for _, month := range subcategory.BreakdownByMonth {
			for _, transaction := range month.Transactions {
				if IsWithinRange(transaction.TransactedAt.Time, f, targetTime) {
					return true
				}
			}
		}
	}

	return false
}

// SortCategories returns the categories sorted alphabetically, with
// CategoryOther always last.
func SortCategories(codes []CategoryCode) []CategoryCode {
	sorted := slices.Clone(codes)
	if sorted == nil {
		sorted = make([]CategoryCode, 0)
	}

	sortByCollation(sorted)

	slices.SortStableFunc(sorted, func(a, b CategoryCode) int {
		switch {
		case a == CategoryOther && b != CategoryOther:
			return 1
		case a != CategoryOther && b == CategoryOther:
			return -1
		}
		return 0
	})

	return sorted
}
