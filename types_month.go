package sellerbook

import (
	"encoding/json"
	"fmt"
	"time"
)

// MonthFormat is the format used to represent months as strings.
const MonthFormat = "2006-01" // write month format

const readMonthFormat = "2006-1" // permissive read format (allows single-digit month)

// Month represents a calendar month, the accounting bucket of the book.
type Month struct {
	y int
	m time.Month
}

// NewMonth returns a normalized Month for the given year and month.
// Out-of-range months roll over, so NewMonth(2025, 13) is January 2026.
func NewMonth(year int, month time.Month) Month {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Month{y: t.Year(), m: t.Month()}
}

// ThisMonth returns the current calendar month.
func ThisMonth() Month {
	now := time.Now()
	return NewMonth(now.Year(), now.Month())
}

// ParseMonth parses a "2006-01" month string (single-digit month accepted).
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(readMonthFormat, s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return NewMonth(t.Year(), t.Month()), nil
}

// Year returns the year of the month.
func (m Month) Year() int { return m.y }

// Month returns the calendar month part.
func (m Month) Month() time.Month { return m.m }

// IsZero returns true if the month is the zero value.
func (m Month) IsZero() bool { return m == Month{} }

// Plus returns the month shifted by n months, negative n shifts backwards.
func (m Month) Plus(n int) Month { return NewMonth(m.y, m.m+time.Month(n)) }

// Before reports whether m is strictly before o.
func (m Month) Before(o Month) bool {
	return m.y < o.y || (m.y == o.y && m.m < o.m)
}

// After reports whether m is strictly after o.
func (m Month) After(o Month) bool { return o.Before(m) }

// Compare returns -1, 0 or 1 comparing m to o chronologically.
func (m Month) Compare(o Month) int {
	switch {
	case m.Before(o):
		return -1
	case o.Before(m):
		return 1
	default:
		return 0
	}
}

// Sub returns the number of months from o to m.
func (m Month) Sub(o Month) int {
	return (m.y-o.y)*12 + int(m.m) - int(o.m)
}

func (m Month) String() string {
	return time.Date(m.y, m.m, 1, 0, 0, 0, 0, time.UTC).Format(MonthFormat)
}

// MarshalJSON implements the json.Marshaler interface, months are
// persisted as "2006-01" strings.
func (m Month) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (m *Month) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseMonth(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
