package workcal

import (
	"fmt"
	"time"
)

// CalendarDate is a plain calendar day without a time component or
// timezone. It is built from local calendar fields (year, month, day), so
// two representations of the same day always compare equal regardless of
// the timezone the source timestamp carried.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate creates a normalized CalendarDate. Out-of-range fields roll over
// the same way time.Date does (e.g. Feb 30 becomes Mar 1/2).
func NewDate(year int, month time.Month, day int) CalendarDate {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return CalendarDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// DateOf extracts the calendar day from a timestamp using its own
// location's calendar fields, never a UTC conversion.
func DateOf(t time.Time) CalendarDate {
	return CalendarDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Today returns the current calendar day in local time.
func Today() CalendarDate {
	return DateOf(time.Now())
}

// ParseDate parses an ISO YYYY-MM-DD string.
func ParseDate(s string) (CalendarDate, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// Key returns the canonical ISO YYYY-MM-DD form used as the map key for
// per-date overrides.
func (d CalendarDate) Key() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d CalendarDate) String() string {
	return d.Key()
}

// Time returns the start of the day in the given location.
func (d CalendarDate) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Weekday returns the weekday of the date (Sunday = 0).
func (d CalendarDate) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// AddDays returns the date n calendar days later (earlier for negative n).
func (d CalendarDate) AddDays(n int) CalendarDate {
	return DateOf(d.Time(time.UTC).AddDate(0, 0, n))
}

// Next returns the following calendar day.
func (d CalendarDate) Next() CalendarDate {
	return d.AddDays(1)
}

// IsZero reports whether d is the zero value.
func (d CalendarDate) IsZero() bool {
	return d == CalendarDate{}
}

// Compare returns -1, 0 or 1 depending on whether d is before, equal to or
// after other.
func (d CalendarDate) Compare(other CalendarDate) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(int(d.Month) - int(other.Month))
	default:
		return sign(d.Day - other.Day)
	}
}

// Before reports whether d is strictly before other.
func (d CalendarDate) Before(other CalendarDate) bool {
	return d.Compare(other) < 0
}

// After reports whether d is strictly after other.
func (d CalendarDate) After(other CalendarDate) bool {
	return d.Compare(other) > 0
}

// DaysUntil returns the number of calendar days from d to other (negative
// when other is earlier).
func (d CalendarDate) DaysUntil(other CalendarDate) int {
	return int(other.Time(time.UTC).Sub(d.Time(time.UTC)).Hours() / 24)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
