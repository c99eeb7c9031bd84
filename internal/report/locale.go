package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Localizer translates labels and formats currency amounts for one locale.
//
// A nil *Localizer is valid and behaves like DefaultLocalizer.
type Localizer struct {
	tag     language.Tag
	unit    currency.Unit
	symbol  string
	printer *message.Printer
}

var defaultLocalizer = NewLocalizer(language.AmericanEnglish, currency.USD)

// DefaultLocalizer returns the en-US localizer formatting USD amounts.
func DefaultLocalizer() *Localizer {
	return defaultLocalizer
}

// NewLocalizer creates a Localizer for a language and currency.
func NewLocalizer(tag language.Tag, unit currency.Unit) *Localizer {
	printer := message.NewPrinter(tag)

	return &Localizer{
		tag:     tag,
		unit:    unit,
		symbol:  printer.Sprintf("%v", currency.Symbol(unit)),
		printer: printer,
	}
}

// ParseLocalizer creates a Localizer from a BCP 47 locale and an ISO 4217
// currency code. An empty currency code uses the currency of the locale's region.
func ParseLocalizer(locale, currencyCode string) (*Localizer, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	var unit currency.Unit
	if currencyCode == "" {
		var confidence language.Confidence
		unit, confidence = currency.FromTag(tag)
		if confidence == language.No {
			return nil, fmt.Errorf("no currency known for locale %q", locale)
		}
	} else {
		unit, err = currency.ParseISO(currencyCode)
		if err != nil {
			return nil, fmt.Errorf("invalid currency %q: %w", currencyCode, err)
		}
	}

	return NewLocalizer(tag, unit), nil
}

func (l *Localizer) or() *Localizer {
	if l == nil {
		return defaultLocalizer
	}
	return l
}

// Tag is the language of the Localizer.
func (l *Localizer) Tag() language.Tag {
	return l.or().tag
}

// Currency is the currency amounts are formatted in.
func (l *Localizer) Currency() currency.Unit {
	return l.or().unit
}

// T translates a message key.
func (l *Localizer) T(key string) string {
	return l.or().printer.Sprintf(key)
}

// Amount formats a signed currency amount with two fraction digits and the
// digit grouping of the locale, e.g. "-$1,100.00". The amount is rounded
// first, so the sign never applies to a zero.
func (l *Localizer) Amount(amount decimal.Decimal) string {
	l = l.or()

	rounded := amount.Round(2)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}

	return sign + l.symbol + l.formatFixed2(rounded.Abs())
}

var maxGroupedInt = decimal.NewFromInt(math.MaxInt64)

// formatFixed2 formats a non-negative amount with exactly two fraction
// digits. The integer and fraction parts are formatted separately so that
// no precision is lost to float64.
func (l *Localizer) formatFixed2(abs decimal.Decimal) string {
	integer := abs.Truncate(0)
	if !integer.LessThan(maxGroupedInt) {
		return abs.StringFixed(2)
	}

	cents := abs.Sub(integer).Shift(2).IntPart()

	// "0.25" in the locale's digits and separator, the leading zero is dropped
	zero := l.printer.Sprint(number.Decimal(0))
	fraction := l.printer.Sprint(number.Decimal(float64(cents)/100, number.Scale(2)))

	return l.printer.Sprint(number.Decimal(integer.IntPart())) + strings.TrimPrefix(fraction, zero)
}
