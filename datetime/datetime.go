// Package datetime implements the Date and DateTime auxiliary types from
// spec.md §3, grounded on original_source/dlhn/src/date.rs and date_time.rs.
//
// Date stores a year offset from 2000 and an ordinal (day-of-year) offset
// from 1, both signed/unsigned integers on the wire (§4.4); DateTime stores
// a unix second count and a sub-second nanosecond remainder. Both convert
// to/from the standard library's time.Time, which already implements
// correct proleptic-Gregorian calendar math, so no third-party calendar
// library is needed.
package datetime

import (
	"time"

	"github.com/dlhn-go/dlhn/errs"
)

const dateYearOffset = 2000

// Date is the wire representation of a calendar date (spec.md §3, §4.4).
type Date struct {
	// YearOffset is (year - 2000), encoded as zigzag-then-prefix-varint i32.
	YearOffset int32
	// OrdinalOffset is (day-of-year - 1), encoded as prefix-varint u16.
	OrdinalOffset uint16
}

// NewDate converts a calendar time.Time (in UTC) into its Date wire form.
func NewDate(t time.Time) Date {
	t = t.UTC()

	return Date{
		YearOffset:    int32(t.Year()) - dateYearOffset,
		OrdinalOffset: uint16(t.YearDay() - 1),
	}
}

// Time reconstructs the calendar date as midnight UTC on that day.
//
// Returns ErrInvalidDateTime if the offsets describe an ordinal day that
// does not exist in the resulting year (e.g. ordinal 366 in a non-leap year).
func (d Date) Time() (time.Time, error) {
	year := int(d.YearOffset) + dateYearOffset
	ordinal := int(d.OrdinalOffset) + 1

	t := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, ordinal-1)
	if t.Year() != year {
		// AddDate normalizes an out-of-range ordinal into the next year
		// instead of failing, so detect that here.
		return time.Time{}, errs.ErrInvalidDateTime
	}

	return t, nil
}

// DateTime is the wire representation of an instant in time (spec.md §3, §4.4).
type DateTime struct {
	// UnixSeconds is the unix timestamp, encoded as zigzag-then-prefix-varint i64.
	UnixSeconds int64
	// Nanosecond is the sub-second remainder, encoded as prefix-varint u32.
	// Must be < 1e9.
	Nanosecond uint32
}

// NewDateTime converts t into its DateTime wire form.
func NewDateTime(t time.Time) DateTime {
	return DateTime{
		UnixSeconds: t.Unix(),
		Nanosecond:  uint32(t.Nanosecond()), //nolint:gosec
	}
}

// Time reconstructs the instant as a UTC time.Time.
//
// Returns ErrInvalidDateTime if Nanosecond >= 1e9 (spec.md §4.4).
func (dt DateTime) Time() (time.Time, error) {
	if dt.Nanosecond >= 1_000_000_000 {
		return time.Time{}, errs.ErrInvalidDateTime
	}

	return time.Unix(dt.UnixSeconds, int64(dt.Nanosecond)).UTC(), nil
}
