package report

import (
	"time"
)

// ExtractTransactions flattens a fund into derived transactions.
//
// The order follows the nesting of the fund: categories, then subcategories,
// then months, then transactions. A fund without categories yields an empty
// slice.
func ExtractTransactions(fund Fund, l *Localizer) []Transaction {
	transactions := make([]Transaction, 0)

	for _, category := range fund.Categories {
		categoryLabel := l.T(CategoryLabel(category.Category))

		for _, subcategory := range category.Subcategories {
			displayCategory := categoryLabel + " - " + l.T(SubcategoryLabel(subcategory.Subcategory))

			for _, month := range subcategory.BreakdownByMonth {
				for _, raw := range month.Transactions {
					transactions = append(transactions, Transaction{
						RawTransaction:  raw,
						FundType:        fund.FundType,
						Category:        category.Category,
						Subcategory:     subcategory.Subcategory,
						DisplayCategory: displayCategory,
					})
				}
			}
		}
	}

	return transactions
}

// FilterTransactions computes the rows of one report table for a fund.
//
// Transactions are extracted, filtered by date, partitioned by sign and
// grouped by the categories selected in the filters. Income keeps positive
// amounts, Expense keeps negative amounts. Zero amounts belong to neither.
//
// A named date range in f must be resolved with Filters.Resolve beforehand.
func FilterTransactions(fund Fund, targetTime time.Time, f *Filters, tableType TableType, l *Localizer) []Transaction {
	filtered := make([]Transaction, 0)

	for _, transaction := range ExtractTransactions(fund, l) {
		if !IsWithinRange(transaction.TransactedAt.Time, f, targetTime) {
			continue
		}

		if !matchesTableType(transaction, tableType) {
			continue
		}

		filtered = append(filtered, transaction)
	}

	var selected []CategoryCode
	if f != nil {
		selected = f.Categories
	}

	return GroupByCategory(filtered, selected, fund.FundType, l)
}

func matchesTableType(t Transaction, tableType TableType) bool {
	switch tableType {
	case TableIncome:
		return t.Amount.IsPositive()
	case TableExpense:
		return t.Amount.IsNegative()
	}

	return false
}
