package types

import (
	"fmt"
	"strings"
	"time"
)

// Date is a calendar day at midnight UTC.
//
// In JSON, a Date is written as "YYYY-MM-DD". Full RFC3339 timestamps are
// accepted as input, their wall clock date is kept.
type Date struct {
	time.Time
}

// DateOf returns the Date on which t occurs.
func DateOf(t time.Time) Date {
	return Date{Day(t)}
}

// ParseDate parses "YYYY-MM-DD" as well as RFC3339 timestamps.
func ParseDate(s string) (Date, error) {
	if strings.Contains(s, "T") {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return Date{}, err
		}
		return DateOf(t), nil
	}

	t, err := ParseDay(s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

// String returns the date formatted as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format(time.DateOnly)
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return fmt.Errorf("invalid date %q, use the YYYY-MM-DD format", value)
	}

	*d = parsed
	return nil
}
