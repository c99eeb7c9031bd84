// Package report implements the Staff Expense Report: flattening fund data
// into transactions, date-range and income/expense filtering, category
// grouping, table presentation and CSV/print export.
//
// All functions in this package are pure. They never mutate their input and
// return freshly allocated slices.
package report

import (
	"strings"
	"time"

	"github.com/mpdx/staff-report/internal/types"
	"github.com/shopspring/decimal"
)

// FundType names a fund, e.g. "Primary" or "Savings".
type FundType string

// Fund is a named financial bucket for a reporting period.
type Fund struct {
	FundType     FundType        `json:"fundType"`
	Total        decimal.Decimal `json:"total"`
	DeficitLimit decimal.Decimal `json:"deficitLimit"`
	Balance      decimal.Decimal `json:"balance"`
	Categories   []Category      `json:"categories"`
}

// Category is a transaction category of a fund.
type Category struct {
	Category        CategoryCode    `json:"category"`
	Total           decimal.Decimal `json:"total"`
	AveragePerMonth decimal.Decimal `json:"averagePerMonth"`
	Subcategories   []Subcategory   `json:"subcategories"`
}

// Subcategory belongs to exactly one Category.
type Subcategory struct {
	Subcategory      SubcategoryCode  `json:"subcategory"`
	Total            decimal.Decimal  `json:"total"`
	AveragePerMonth  decimal.Decimal  `json:"averagePerMonth"`
	BreakdownByMonth []MonthBreakdown `json:"breakdownByMonth"`
}

// MonthBreakdown holds the raw transactions of a subcategory for one month.
type MonthBreakdown struct {
	Month        types.Month      `json:"month"`
	Total        decimal.Decimal  `json:"total"`
	Transactions []RawTransaction `json:"transactions"`
}

// RawTransaction is a transaction as delivered by the financial backend.
// Positive amounts are income, negative amounts are expenses.
type RawTransaction struct {
	ID           string          `json:"id"`
	Amount       decimal.Decimal `json:"amount"`
	TransactedAt types.Date      `json:"transactedAt"`
	Description  string          `json:"description"`
}

// Transaction is a RawTransaction annotated with the fund, category and
// subcategory it was found in.
//
// Grouped rows are synthetic transactions that aggregate all transactions of
// a category. For them, CategoryName and GroupedTransactions are set.
type Transaction struct {
	RawTransaction
	FundType        FundType        `json:"fundType"`
	Category        CategoryCode    `json:"category"`
	Subcategory     SubcategoryCode `json:"subcategory,omitempty"`
	DisplayCategory string          `json:"displayCategory"`

	CategoryName        CategoryCode  `json:"categoryName,omitempty"`
	GroupedTransactions []Transaction `json:"groupedTransactions,omitempty"`
}

// IsGrouped reports whether the transaction is a category aggregate.
func (t Transaction) IsGrouped() bool {
	return t.GroupedTransactions != nil
}

// Filters are the user selected report filters.
//
// SelectedDateRange and StartDate/EndDate are mutually exclusive in the
// settings dialog, evaluation tolerates both being set.
type Filters struct {
	SelectedDateRange DateRange      `json:"selectedDateRange,omitempty"`
	StartDate         *time.Time     `json:"startDate,omitempty"`
	EndDate           *time.Time     `json:"endDate,omitempty"`
	Categories        []CategoryCode `json:"categories,omitempty"`
}

// TableType selects one side of the report.
type TableType string

const (
	TableIncome  TableType = "Income"
	TableExpense TableType = "Expense"
)

// ParseTableType parses a table type case-insensitively.
func ParseTableType(s string) (TableType, error) {
	switch strings.ToLower(s) {
	case "income":
		return TableIncome, nil
	case "expense":
		return TableExpense, nil
	}

	return "", ErrUnsupportedTableType
}

// ReportType selects what is exported.
type ReportType string

const (
	ReportIncome   ReportType = "Income"
	ReportExpense  ReportType = "Expense"
	ReportCombined ReportType = "Combined"
)

// ParseReportType parses a report type case-insensitively.
func ParseReportType(s string) (ReportType, error) {
	switch strings.ToLower(s) {
	case "income":
		return ReportIncome, nil
	case "expense":
		return ReportExpense, nil
	case "combined":
		return ReportCombined, nil
	}

	return "", ErrUnsupportedReportType
}

// Title returns the report title, e.g. "Income Report".
func (r ReportType) Title() string {
	return string(r) + " Report"
}
