package v1

import (
	"fmt"
	"strings"
	"time"

	"github.com/mpdx/staff-report/internal/report"
	"github.com/mpdx/staff-report/internal/types"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
)

// defaultFundType is the fund reported on when no fundType is given.
const defaultFundType report.FundType = "Primary"

// ReportQuery selects the fund data and filters of the report.
type ReportQuery struct {
	SnapshotQuery
	Month             types.Month `form:"month"`             // Target month, defaults to the current month
	FundType          string      `form:"fundType"`          // Fund to report on, defaults to Primary
	SelectedDateRange string      `form:"selectedDateRange"` // WeekToDate, MonthToDate or YearToDate
	StartDate         string      `form:"startDate"`         // Inclusive start of a custom range, YYYY-MM-DD
	EndDate           string      `form:"endDate"`           // Inclusive end of a custom range, YYYY-MM-DD
	Categories        []string    `form:"categories"`        // Categories to group, may contain glob patterns
}

// TableQuery adds the table presentation to a ReportQuery.
type TableQuery struct {
	ReportQuery
	SortField     string `form:"sortField"`     // date or amount
	SortDirection string `form:"sortDirection"` // asc or desc
	Page          int    `form:"page"`          // Zero based page
	PageSize      int    `form:"pageSize"`      // One of 10, 25, 50, 100
	EmptyText     string `form:"emptyText"`     // Placeholder for an empty table
}

func (q TableQuery) sort() (*report.SortModel, error) {
	if q.SortField == "" && q.SortDirection == "" {
		return nil, nil
	}

	sort := report.SortModel{
		Field:     report.SortField(q.SortField),
		Direction: report.SortDirection(q.SortDirection),
	}

	if sort.Field == "" {
		sort.Field = report.SortByDate
	}

	if sort.Direction == "" {
		sort.Direction = report.SortAscending
	}

	if sort.Field != report.SortByDate && sort.Field != report.SortByAmount {
		return nil, errInvalidSortField
	}

	if sort.Direction != report.SortAscending && sort.Direction != report.SortDescending {
		return nil, errInvalidSortOrder
	}

	return &sort, nil
}

// filters parses the date filters of the query. The named range is resolved
// against now, explicit bounds take precedence.
func (q ReportQuery) filters(now time.Time) (report.Filters, error) {
	var f report.Filters

	if q.SelectedDateRange != "" {
		r, err := report.ParseDateRange(q.SelectedDateRange)
		if err != nil {
			return report.Filters{}, err
		}
		f.SelectedDateRange = r
	}

	if q.StartDate != "" {
		start, err := types.ParseDay(q.StartDate)
		if err != nil {
			return report.Filters{}, fmt.Errorf("invalid startDate %q, use the YYYY-MM-DD format", q.StartDate)
		}
		f.StartDate = &start
	}

	if q.EndDate != "" {
		end, err := types.ParseDay(q.EndDate)
		if err != nil {
			return report.Filters{}, fmt.Errorf("invalid endDate %q, use the YYYY-MM-DD format", q.EndDate)
		}
		f.EndDate = &end
	}

	return f.Resolve(now)
}

// targetTime is the month the report falls back to without a date range.
func (q ReportQuery) targetTime(now time.Time) time.Time {
	if q.Month.IsZero() {
		return now
	}
	return q.Month.FirstDay()
}

func (q ReportQuery) fundType() report.FundType {
	if q.FundType == "" {
		return defaultFundType
	}
	return report.FundType(q.FundType)
}

// expandCategories resolves the selected categories. Entries containing
// a "*" are glob patterns matched against the available categories, all
// other entries are used as given. The result has no duplicates and keeps
// the order of the selection.
func expandCategories(selected []string, available []report.CategoryCode) []report.CategoryCode {
	seen := make(map[report.CategoryCode]bool)
	var codes []report.CategoryCode

	add := func(code report.CategoryCode) {
		if !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}

	for _, entry := range selected {
		for _, part := range strings.Split(entry, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}

			if !strings.Contains(part, "*") {
				add(report.CategoryCode(part))
				continue
			}

			for _, code := range available {
				if glob.Glob(part, string(code)) {
					add(code)
				}
			}
		}
	}

	return codes
}

type ReportTable struct {
	TableType report.TableType `json:"tableType" example:"Expense"`
	Title     string           `json:"title" example:"Expense"`
	Month     types.Month      `json:"month" example:"2025-01-01"` // The target month
	Filters   report.Filters   `json:"filters"`                    // The filters after resolving named ranges and category patterns
	Total     string           `json:"total" example:"-$1,100.00"` // Sum of all rows, formatted
	RawTotal  decimal.Decimal  `json:"rawTotal" example:"-1100"`
	report.Table
}

type ReportTableResponse struct {
	Data  *ReportTable `json:"data"`
	Error *string      `json:"error,omitempty" example:"the account query parameter must be set"`
}

type BreakdownResponse struct {
	Data  *report.BreakdownDialog `json:"data"`
	Error *string                 `json:"error,omitempty" example:"there is no transaction of this category in the report"`
}

type CategoryOption struct {
	Code  report.CategoryCode `json:"code" example:"AdditionalSalary"`
	Label string              `json:"label" example:"Additional Salary"`
}

type CategoriesResponse struct {
	Data  []CategoryOption `json:"data"`
	Error *string          `json:"error,omitempty" example:"the account query parameter must be set"`
}
