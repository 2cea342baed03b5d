package date_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adtkit/adtkit/date"
)

func mustDate(t *testing.T, y, m, d int) date.Date {
	t.Helper()
	dt, err := date.New(y, m, d)
	require.NoError(t, err)
	return dt
}

func TestNew_Valid(t *testing.T) {
	d := mustDate(t, 2022, 5, 20)
	assert.Equal(t, 2022, d.Year())
	assert.Equal(t, 5, d.Month())
	assert.Equal(t, 20, d.Day())
}

func TestNew_RejectsBadComponents(t *testing.T) {
	cases := []struct {
		name    string
		y, m, d int
		want    error
	}{
		{"year zero", 0, 1, 1, date.ErrYear},
		{"negative year", -44, 3, 15, date.ErrYear},
		{"month 13", 2022, 13, 1, date.ErrMonth},
		{"month 0", 2022, 0, 1, date.ErrMonth},
		{"day 0", 2022, 1, 0, date.ErrDay},
		{"feb 30", 2022, 2, 30, date.ErrDay},
		{"feb 29 common year", 2021, 2, 29, date.ErrDay},
		{"apr 31", 2022, 4, 31, date.ErrDay},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := date.New(tc.y, tc.m, tc.d)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNew_LeapFebruary(t *testing.T) {
	d := mustDate(t, 2020, 2, 29)
	assert.True(t, d.IsLeap())
}

func TestIsLeapYear(t *testing.T) {
	assert.True(t, date.IsLeapYear(2000))
	assert.True(t, date.IsLeapYear(2004))
	assert.False(t, date.IsLeapYear(2001))
	assert.False(t, date.IsLeapYear(1900))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, date.DaysInMonth(1, 2022))
	assert.Equal(t, 30, date.DaysInMonth(4, 2022))
	assert.Equal(t, 28, date.DaysInMonth(2, 2022))
	assert.Equal(t, 29, date.DaysInMonth(2, 2020))
	assert.Equal(t, 0, date.DaysInMonth(13, 2022))
}

func TestDayOfYear(t *testing.T) {
	assert.Equal(t, 1, mustDate(t, 2022, 1, 1).DayOfYear())
	assert.Equal(t, 140, mustDate(t, 2022, 5, 20).DayOfYear())
	assert.Equal(t, 365, mustDate(t, 2022, 12, 31).DayOfYear())
	assert.Equal(t, 366, mustDate(t, 2020, 12, 31).DayOfYear())
}

func TestOrdering(t *testing.T) {
	old := mustDate(t, 2000, 1, 1)
	new_ := mustDate(t, 2022, 5, 20)

	assert.True(t, old.Before(new_))
	assert.True(t, new_.After(old))
	assert.Equal(t, -1, old.Compare(new_))
	assert.Equal(t, 1, new_.Compare(old))
	assert.Equal(t, 0, new_.Compare(mustDate(t, 2022, 5, 20)))
	assert.True(t, new_.Equal(mustDate(t, 2022, 5, 20)))

	// Same year, different month; same month, different day.
	assert.True(t, mustDate(t, 2022, 4, 30).Before(mustDate(t, 2022, 5, 1)))
	assert.True(t, mustDate(t, 2022, 5, 19).Before(mustDate(t, 2022, 5, 20)))
}

func TestString(t *testing.T) {
	assert.Equal(t, "20/05/2022", mustDate(t, 2022, 5, 20).String())
	assert.Equal(t, "01/01/0999", mustDate(t, 999, 1, 1).String())
}
