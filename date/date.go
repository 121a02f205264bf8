// Package date provides a calendar date with day granularity, as used in
// transaction logs.
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// Layout is the format of dates in a transaction log: zero-padded day,
// zero-padded month and four digit year (dd/MM/yyyy).
const Layout = "02/01/2006"

// ISOFormat is the format used to represent dates in JSON.
const ISOFormat = "2006-01-02"

// Date represents a date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// Time returns midnight UTC on that day.
func (d Date) Time() time.Time { return d.time() }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d == Date{} }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// String formats the date the way it is written in a transaction log.
func (d Date) String() string { return d.time().Format(Layout) }

// Parse parses a Date written as dd/MM/yyyy.
//
// It is strict: day and month must be zero-padded, the year must have four
// digits, and out of range values (31/02/2020, 01/13/2020) are rejected
// rather than rolled over.
func Parse(str string) (Date, error) {
	on, err := time.ParseInLocation(Layout, str, time.UTC)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format dd/MM/yyyy: %w", str, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// MarshalJSON writes the date as an ISO-8601 string.
func (d Date) MarshalJSON() ([]byte, error) {
	str := d.time().Format(ISOFormat)
	return json.Marshal(&str)
}

// UnmarshalJSON reads a date from an ISO-8601 string.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	on, err := time.ParseInLocation(ISOFormat, str, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid date %q want format %q: %w", str, ISOFormat, err)
	}
	*d = New(on.Date())
	return nil
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
