package sellerbook

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency used for display. The book itself is
// single-currency, only formatting cares about the code.
const DefaultCurrency = "GBP"

// Money is a monetary value counted in integer minor units (pence),
// avoiding binary floating-point error in all bookkeeping arithmetic.
type Money int64

// ParseAmount parses a decimal string into minor units, using sep as the
// decimal separator (locales disagree on '.' vs ','). More than two
// fraction digits, negative amounts or non-numeric input fail with
// ErrInvalidNumber.
func ParseAmount(s string, sep rune) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errInvalidNumber("amount", s)
	}
	if sep != '.' {
		s = strings.ReplaceAll(s, string(sep), ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, errInvalidNumber("amount", s)
	}
	cents := d.Shift(2)
	if !cents.IsInteger() || cents.IsNegative() {
		return 0, errInvalidNumber("amount", s)
	}
	return Money(cents.IntPart()), nil
}

// PercentOf returns pct percent of m, rounded half-up. This is the one
// rounding rule used everywhere percentage arithmetic happens.
func PercentOf(m Money, pct int) Money {
	r := decimal.NewFromInt(int64(m)).
		Mul(decimal.NewFromInt(int64(pct))).
		Div(decimal.NewFromInt(100)).
		Round(0)
	return Money(r.IntPart())
}

// Times returns the value of n units at m each.
func (m Money) Times(n int) Money { return m * Money(n) }

// Plain returns the undecorated "12.50" representation, for CSV exports
// and machine-friendly output.
func (m Money) Plain() string {
	return decimal.New(int64(m), -2).StringFixed(2)
}

// Format renders the amount in the given ISO currency code.
func (m Money) Format(code string) string {
	return money.New(int64(m), code).Display()
}

// String renders the amount in the default currency.
func (m Money) String() string { return m.Format(DefaultCurrency) }

// SignedString returns the representation with an explicit sign.
// Zero is represented as "-".
func (m Money) SignedString() string {
	switch {
	case m == 0:
		return "-"
	case m > 0:
		return "+" + m.String()
	default:
		return m.String()
	}
}
