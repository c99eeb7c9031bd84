package report

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// SortField is a sortable column of the report table.
type SortField string

const (
	SortByDate   SortField = "date"
	SortByAmount SortField = "amount"
)

// SortDirection is the direction of a column sort.
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// SortModel is a column sort toggled in the table header.
type SortModel struct {
	Field     SortField     `json:"field"`
	Direction SortDirection `json:"direction"`
}

// PageSizeOptions are the selectable page sizes.
var PageSizeOptions = []int{10, 25, 50, 100}

// DefaultPageSize is used when no or an unsupported page size is requested.
const DefaultPageSize = 25

// TableState is the rendering state of the table.
type TableState string

const (
	TableStateLoading TableState = "loading"
	TableStateEmpty   TableState = "empty"
	TableStateData    TableState = "data"
)

// TableOptions configure NewTable.
type TableOptions struct {
	Sort             *SortModel
	Page             int // zero based
	PageSize         int
	Loading          bool
	EmptyPlaceholder string
}

// TableRow is one displayed row.
type TableRow struct {
	ID           string          `json:"id"`
	Date         string          `json:"date"`
	Description  string          `json:"description"`
	Amount       string          `json:"amount"`
	RawAmount    decimal.Decimal `json:"rawAmount"`
	CategoryName CategoryCode    `json:"categoryName,omitempty"`
	HasBreakdown bool            `json:"hasBreakdown"`
}

// TablePagination describes the displayed page.
type TablePagination struct {
	Page            int   `json:"page"`
	PageSize        int   `json:"pageSize"`
	PageSizeOptions []int `json:"pageSizeOptions"`
	Count           int   `json:"count"`
	Total           int   `json:"total"`
}

// Table is the presentation of a report table.
type Table struct {
	State       TableState      `json:"state"`
	Placeholder string          `json:"placeholder,omitempty"`
	Rows        []TableRow      `json:"rows"`
	Pagination  TablePagination `json:"pagination"`
}

// loadingPlaceholder is shown while the data is fetched.
const loadingPlaceholder = "Loading"

// SortRows returns the rows in display order: grouped rows first, then by
// date, newest first. The sort is stable.
func SortRows(rows []Transaction) []Transaction {
	sorted := slices.Clone(rows)

	slices.SortStableFunc(sorted, func(a, b Transaction) int {
		if a.IsGrouped() != b.IsGrouped() {
			if a.IsGrouped() {
				return -1
			}
			return 1
		}

		return b.TransactedAt.Compare(a.TransactedAt.Time)
	})

	return sorted
}

// sortColumn applies a column sort on top of the display order. Rows that
// compare equal keep their display order.
func sortColumn(rows []Transaction, sort SortModel) {
	compare := func(a, b Transaction) int {
		if sort.Field == SortByAmount {
			return a.Amount.Cmp(b.Amount)
		}
		return a.TransactedAt.Compare(b.TransactedAt.Time)
	}

	slices.SortStableFunc(rows, func(a, b Transaction) int {
		if sort.Direction == SortDescending {
			return compare(b, a)
		}
		return compare(a, b)
	})
}

// ValidSort reports whether the sort model names a known field and direction.
func ValidSort(sort SortModel) bool {
	return (sort.Field == SortByDate || sort.Field == SortByAmount) &&
		(sort.Direction == SortAscending || sort.Direction == SortDescending)
}

// NewTable renders the rows of a report table.
//
// Sorting and pagination are done entirely over the given rows.
func NewTable(rows []Transaction, opts TableOptions, l *Localizer) Table {
	pageSize := opts.PageSize
	if !slices.Contains(PageSizeOptions, pageSize) {
		pageSize = DefaultPageSize
	}

	table := Table{
		Rows: make([]TableRow, 0),
		Pagination: TablePagination{
			Page:            opts.Page,
			PageSize:        pageSize,
			PageSizeOptions: PageSizeOptions,
			Total:           len(rows),
		},
	}

	if opts.Loading {
		table.State = TableStateLoading
		table.Placeholder = l.T(loadingPlaceholder)
		table.Pagination.Total = 0
		return table
	}

	if len(rows) == 0 {
		table.State = TableStateEmpty
		table.Placeholder = opts.EmptyPlaceholder
		return table
	}

	table.State = TableStateData

	sorted := SortRows(rows)
	if opts.Sort != nil && ValidSort(*opts.Sort) {
		sortColumn(sorted, *opts.Sort)
	}

	start := opts.Page * pageSize
	if opts.Page < 0 || start >= len(sorted) {
		return table
	}
	end := min(start+pageSize, len(sorted))

	for _, row := range sorted[start:end] {
		table.Rows = append(table.Rows, newTableRow(row, l))
	}
	table.Pagination.Count = len(table.Rows)

	return table
}

func newTableRow(t Transaction, l *Localizer) TableRow {
	return TableRow{
		ID:           t.ID,
		Date:         t.TransactedAt.Format("2006-01-02"),
		Description:  t.DisplayCategory,
		Amount:       l.Amount(t.Amount),
		RawAmount:    t.Amount,
		CategoryName: t.CategoryName,
		HasBreakdown: t.IsGrouped(),
	}
}

// BreakdownLine is one contributor of a grouped row.
type BreakdownLine struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      string          `json:"amount"`
	RawAmount   decimal.Decimal `json:"rawAmount"`
}

// BreakdownDialog lists the contributors of a grouped row and their total.
type BreakdownDialog struct {
	Title    string          `json:"title"`
	Lines    []BreakdownLine `json:"lines"`
	Total    string          `json:"total"`
	RawTotal decimal.Decimal `json:"rawTotal"`
}

// Breakdown returns the breakdown of a grouped row. Contributors are listed
// in source order.
func Breakdown(row Transaction, l *Localizer) (BreakdownDialog, error) {
	if !row.IsGrouped() {
		return BreakdownDialog{}, fmt.Errorf("%w: %s", ErrNotGrouped, row.ID)
	}

	dialog := BreakdownDialog{
		Title: l.T(CategoryLabel(row.CategoryName)),
		Lines: make([]BreakdownLine, 0, len(row.GroupedTransactions)),
	}

	total := decimal.Zero
	for _, t := range row.GroupedTransactions {
		total = total.Add(t.Amount)
		dialog.Lines = append(dialog.Lines, BreakdownLine{
			ID:          t.ID,
			Date:        t.TransactedAt.Format("2006-01-02"),
			Category:    t.DisplayCategory,
			Description: t.Description,
			Amount:      l.Amount(t.Amount),
			RawAmount:   t.Amount,
		})
	}

	dialog.RawTotal = total
	dialog.Total = l.Amount(total)
	return dialog, nil
}

// FindGroupedRow returns the grouped row of a category.
func FindGroupedRow(rows []Transaction, code CategoryCode) (Transaction, bool) {
	for _, row := range rows {
		if row.IsGrouped() && row.CategoryName == code {
			return row, true
		}
	}

	return Transaction{}, false
}
