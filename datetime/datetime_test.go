package datetime

import (
	"testing"
	"time"

	"github.com/dlhn-go/dlhn/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate_Epoch(t *testing.T) {
	d := NewDate(time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, Date{YearOffset: 0, OrdinalOffset: 0}, d)
}

func TestRoundTrip_Date(t *testing.T) {
	dates := []time.Time{
		time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.July, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), // leap year, ordinal 366
		time.Date(1583, time.January, 1, 0, 0, 0, 0, time.UTC),
	}

	for _, want := range dates {
		d := NewDate(want)
		got, err := d.Time()
		require.NoError(t, err)
		assert.True(t, want.Equal(got), "want %v got %v", want, got)
	}
}

func TestDate_InvalidOrdinalFails(t *testing.T) {
	// 2023 is not a leap year; ordinal 366 does not exist.
	d := Date{YearOffset: 2023 - dateYearOffset, OrdinalOffset: 365}
	_, err := d.Time()
	require.ErrorIs(t, err, errs.ErrInvalidDateTime)
}

func TestNewDateTime_Zero(t *testing.T) {
	dt := NewDateTime(time.Unix(0, 0).UTC())
	assert.Equal(t, DateTime{UnixSeconds: 0, Nanosecond: 0}, dt)
}

func TestRoundTrip_DateTime(t *testing.T) {
	instants := []time.Time{
		time.Unix(0, 0).UTC(),
		time.Unix(1753920000, 123456789).UTC(),
		time.Unix(-1, 0).UTC(),
		time.Unix(1<<33, 999999999).UTC(),
	}

	for _, want := range instants {
		dt := NewDateTime(want)
		got, err := dt.Time()
		require.NoError(t, err)
		assert.True(t, want.Equal(got), "want %v got %v", want, got)
	}
}

func TestDateTime_NanosecondOverflowFails(t *testing.T) {
	dt := DateTime{UnixSeconds: 0, Nanosecond: 1_000_000_000}
	_, err := dt.Time()
	require.ErrorIs(t, err, errs.ErrInvalidDateTime)
}
