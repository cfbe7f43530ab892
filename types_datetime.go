package stocks

import (
	"fmt"
	"strings"
	"time"
)

// DatetimeFormat is the format accepted on the command line for trade timestamps.
const DatetimeFormat = "2006-01-02 15:04:05"

// DateFormat is the format accepted on the command line for as-of dates.
const DateFormat = "2006-01-02"

// Datetime represents a trade timestamp with second-level granularity, in UTC.
//
// It is the only ordering key of a trade history: every point-in-time query
// considers trades strictly before a reference Datetime.
type Datetime struct {
	t time.Time
}

// NewDatetime returns a Datetime for the given calendar instant, in UTC.
func NewDatetime(year int, month time.Month, day, hour, min, sec int) Datetime {
	return Datetime{time.Date(year, month, day, hour, min, sec, 0, time.UTC)}
}

// Now returns the current instant truncated to the second.
func Now() Datetime {
	return Datetime{time.Now().UTC().Truncate(time.Second)}
}

// ParseDatetime parses a "YYYY-MM-DD HH:MM:SS" string.
func ParseDatetime(str string) (Datetime, error) {
	t, err := time.ParseInLocation(DatetimeFormat, strings.TrimSpace(str), time.UTC)
	if err != nil {
		return Datetime{}, fmt.Errorf("invalid datetime %q (expected %q): %w", str, DatetimeFormat, err)
	}
	return Datetime{t}, nil
}

// ParseDate parses a "YYYY-MM-DD" string as the end of that day (23:59:59),
// so that an as-of query dated that day includes the day's trades.
func ParseDate(str string) (Datetime, error) {
	t, err := time.ParseInLocation(DateFormat, strings.TrimSpace(str), time.UTC)
	if err != nil {
		return Datetime{}, fmt.Errorf("invalid date %q (expected %q): %w", str, DateFormat, err)
	}
	return NewDatetime(t.Year(), t.Month(), t.Day(), 23, 59, 59), nil
}

// Year returns the calendar year.
func (d Datetime) Year() int { return d.t.Year() }

// Month returns the calendar month.
func (d Datetime) Month() time.Month { return d.t.Month() }

// Before reports whether d is strictly before x.
func (d Datetime) Before(x Datetime) bool { return d.t.Before(x.t) }

// After reports whether d is strictly after x.
func (d Datetime) After(x Datetime) bool { return d.t.After(x.t) }

// Equal reports whether d and x denote the same instant.
func (d Datetime) Equal(x Datetime) bool { return d.t.Equal(x.t) }

// IsZero reports whether d is the zero value.
func (d Datetime) IsZero() bool { return d.t.IsZero() }

// String formats the datetime in RFC3339, the persistence format.
func (d Datetime) String() string { return d.t.Format(time.RFC3339) }

// MarshalJSON implements json.Marshaler, encoding as an RFC3339 string.
func (d Datetime) MarshalJSON() ([]byte, error) {
	return d.t.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler from an RFC3339 string.
func (d *Datetime) UnmarshalJSON(data []byte) error {
	if err := d.t.UnmarshalJSON(data); err != nil {
		return err
	}
	d.t = d.t.UTC()
	return nil
}
