package report

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedRange      = errors.New("unsupported date range")
	ErrUnsupportedTableType  = errors.New("the table type must be one of Income, Expense")
	ErrUnsupportedReportType = errors.New("the report type must be one of Income, Expense, Combined")
	ErrNoTransactions        = errors.New("there are no transactions to download")
	ErrNotGrouped            = errors.New("the transaction is not a category group")
)

// UnsupportedRangeError is returned when a named date range cannot be resolved.
type UnsupportedRangeError struct {
	Range DateRange
}

func (e *UnsupportedRangeError) Error() string {
	return fmt.Sprintf("%s %q, must be one of %s, %s, %s", ErrUnsupportedRange, string(e.Range), WeekToDate, MonthToDate, YearToDate)
}

// Is makes errors.Is(err, ErrUnsupportedRange) work.
func (e *UnsupportedRangeError) Is(target error) bool {
	return target == ErrUnsupportedRange
}
