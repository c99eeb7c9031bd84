package report

import (
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// GroupedIDPrefix prefixes the ID of every grouped transaction.
const GroupedIDPrefix = "grouped-"

// GroupByCategory replaces all transactions of the selected categories with
// one grouped transaction per category.
//
// With no selected categories, the transactions are returned unchanged.
// Otherwise, the grouped transactions come first, sorted by category code,
// followed by all other transactions in their input order. Selected
// categories without any transactions do not produce a grouped transaction.
func GroupByCategory(transactions []Transaction, selected []CategoryCode, fundType FundType, l *Localizer) []Transaction {
	if len(selected) == 0 {
		return transactions
	}

	isSelected := make(map[CategoryCode]bool, len(selected))
	for _, code := range selected {
		isSelected[code] = true
	}

	groups := make(map[CategoryCode][]Transaction)
	codes := make([]CategoryCode, 0, len(selected))
	ungrouped := make([]Transaction, 0, len(transactions))

	for _, transaction := range transactions {
		if !isSelected[transaction.Category] {
			ungrouped = append(ungrouped, transaction)
			continue
		}

		if _, ok := groups[transaction.Category]; !ok {
			codes = append(codes, transaction.Category)
		}
		groups[transaction.Category] = append(groups[transaction.Category], transaction)
	}

	sortByCollation(codes)

	result := make([]Transaction, 0, len(codes)+len(ungrouped))
	for _, code := range codes {
		result = append(result, newGroupedTransaction(code, groups[code], fundType, l))
	}

	return append(result, ungrouped...)
}

// newGroupedTransaction aggregates the contributors of one category. The
// date is the earliest contributor date, the amount is the sum.
func newGroupedTransaction(code CategoryCode, contributors []Transaction, fundType FundType, l *Localizer) Transaction {
	amount := decimal.Zero
	earliest := contributors[0].TransactedAt

	for _, c := range contributors {
		amount = amount.Add(c.Amount)
		if c.TransactedAt.Before(earliest.Time) {
			earliest = c.TransactedAt
		}
	}

	return Transaction{
		RawTransaction: RawTransaction{
			ID:           GroupedIDPrefix + string(code),
			Amount:       amount,
			TransactedAt: earliest,
		},
		FundType:            fundType,
		Category:            code,
		DisplayCategory:     l.T(CategoryLabel(code)),
		CategoryName:        code,
		GroupedTransactions: slices.Clone(contributors),
	}
}

// sortByCollation sorts category codes in place with an English collator.
//
// A collate.Collator is not safe for concurrent use, so every call creates
// its own.
func sortByCollation(codes []CategoryCode) {
	collator := collate.New(language.English)

	slices.SortStableFunc(codes, func(a, b CategoryCode) int {
		return collator.CompareString(string(a), string(b))
	})
}
