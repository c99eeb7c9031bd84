package report

import (
	"time"

	"github.com/mpdx/staff-report/internal/types"
)

// DateRange is a named date range relative to the current day.
type DateRange string

const (
	WeekToDate  DateRange = "WeekToDate"
	MonthToDate DateRange = "MonthToDate"
	YearToDate  DateRange = "YearToDate"
)

// ParseDateRange parses the name of a date range.
func ParseDateRange(s string) (DateRange, error) {
	r := DateRange(s)
	switch r {
	case WeekToDate, MonthToDate, YearToDate:
		return r, nil
	}

	return "", &UnsupportedRangeError{Range: r}
}

// ResolveDateRange resolves a named range to concrete start and end days
// relative to now. Weeks start on Monday. The end is always the current day.
func ResolveDateRange(r DateRange, now time.Time) (start, end time.Time, err error) {
	today := types.Day(now)

	switch r {
	case WeekToDate:
		sinceMonday := (int(today.Weekday()) + 6) % 7
		return today.AddDate(0, 0, -sinceMonday), today, nil
	case MonthToDate:
		return types.MonthOf(today).FirstDay(), today, nil
	case YearToDate:
		return time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC), today, nil
	}

	return time.Time{}, time.Time{}, &UnsupportedRangeError{Range: r}
}

// Resolve returns a copy of the filters with StartDate and EndDate set from
// the named range. If any explicit bound is set, the filters are returned
// unchanged.
func (f Filters) Resolve(now time.Time) (Filters, error) {
	if f.SelectedDateRange == "" || f.StartDate != nil || f.EndDate != nil {
		return f, nil
	}

	start, end, err := ResolveDateRange(f.SelectedDateRange, now)
	if err != nil {
		return Filters{}, err
	}

	f.StartDate = &start
	f.EndDate = &end
	return f, nil
}

// IsWithinRange reports whether date passes the date filter.
//
// With an explicit StartDate and/or EndDate, the date must lie within the
// inclusive bounds that are set. Otherwise, the date must be in the calendar
// month of targetMonth. All comparisons use day precision.
func IsWithinRange(date time.Time, f *Filters, targetMonth time.Time) bool {
	day := types.Day(date)

	if f != nil && (f.StartDate != nil || f.EndDate != nil) {
		if f.StartDate != nil && day.Before(types.Day(*f.StartDate)) {
			return false
		}

		if f.EndDate != nil && day.After(types.Day(*f.EndDate)) {
			return false
		}

		return true
	}

	return types.MonthOf(targetMonth).Contains(day)
}
