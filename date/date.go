package date

import (
	"errors"
	"fmt"
)

// Sentinel errors for date construction.
var (
	// ErrYear indicates a non-positive year.
	ErrYear = errors.New("date: year must be positive")

	// ErrMonth indicates a month outside 1..12.
	ErrMonth = errors.New("date: month must be between 1 and 12")

	// ErrDay indicates a day outside the valid range for its month and year.
	ErrDay = errors.New("date: day out of range for month")
)

// Date is an immutable Gregorian calendar date. The zero value is not a
// valid date; obtain instances through New.
type Date struct {
	year  int
	month int
	day   int
}

// New validates the components and returns the corresponding Date.
// Validation order: year, then month, then day, so the first broken
// component is the one reported.
func New(year, month, day int) (Date, error) {
	if year < 1 {
		return Date{}, fmt.Errorf("%w: %d", ErrYear, year)
	}
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("%w: %d", ErrMonth, month)
	}
	if max := DaysInMonth(month, year); day < 1 || day > max {
		return Date{}, fmt.Errorf("%w: %d/%d allows 1..%d, got %d", ErrDay, month, year, max, day)
	}
	return Date{year: year, month: month, day: day}, nil
}

// IsLeapYear reports whether year is a Gregorian leap year:
// divisible by 4 and not by 100, or divisible by 400.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the number of days in the given month of the given
// year, or 0 if month is outside 1..12.
func DaysInMonth(month, year int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// Year returns the year component.
func (d Date) Year() int { return d.year }

// Month returns the month component (1..12).
func (d Date) Month() int { return d.month }

// Day returns the day-of-month component.
func (d Date) Day() int { return d.day }

// IsLeap reports whether the date's year is a leap year.
func (d Date) IsLeap() bool { return IsLeapYear(d.year) }

// DayOfYear returns the ordinal day within the year: 1 for January 1st,
// up to 365 (or 366 in leap years) for December 31st.
func (d Date) DayOfYear() int {
	n := d.day
	for m := 1; m < d.month; m++ {
		n += DaysInMonth(m, d.year)
	}
	return n
}

// Compare returns -1 if d is before other, 0 if equal, +1 if after.
func (d Date) Compare(other Date) int {
	switch {
	case d.year != other.year:
		return sign(d.year - other.year)
	case d.month != other.month:
		return sign(d.month - other.month)
	default:
		return sign(d.day - other.day)
	}
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// Equal reports whether d and other denote the same calendar day.
func (d Date) Equal(other Date) bool { return d == other }

// String formats the date as dd/mm/yyyy.
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.day, d.month, d.year)
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
