package recurring_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/buxfer/internal/errs"
	"github.com/MrJamesThe3rd/buxfer/internal/recurring"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		name string
		due  time.Time
		freq recurring.Frequency
		want time.Time
	}{
		{"Weekly", date(2024, 3, 1), recurring.Weekly, date(2024, 3, 8)},
		{"WeeklyAcrossMonth", date(2024, 2, 26), recurring.Weekly, date(2024, 3, 4)},
		{"Monthly", date(2024, 3, 15), recurring.Monthly, date(2024, 4, 15)},
		{"MonthlyClampLeap", date(2024, 1, 31), recurring.Monthly, date(2024, 2, 29)},
		{"MonthlyClampNonLeap", date(2023, 1, 31), recurring.Monthly, date(2023, 2, 28)},
		{"MonthlyFromLeapDay", date(2024, 2, 29), recurring.Monthly, date(2024, 3, 29)},
		{"MonthlyDecember", date(2024, 12, 10), recurring.Monthly, date(2025, 1, 10)},
		{"Yearly", date(2024, 5, 5), recurring.Yearly, date(2025, 5, 5)},
		{"YearlyFromLeapDay", date(2024, 2, 29), recurring.Yearly, date(2025, 2, 28)},
		{"TimeOfDayDropped", time.Date(2024, 3, 1, 18, 30, 0, 0, time.UTC), recurring.Weekly, date(2024, 3, 8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := recurring.Advance(tt.due, tt.freq)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.After(tt.due))
		})
	}
}

func TestAdvance_Chained(t *testing.T) {
	d := date(2024, 2, 29)

	d, err := recurring.Advance(d, recurring.Monthly)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 3, 29), d)

	d, err = recurring.Advance(d, recurring.Monthly)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 4, 29), d)
}

func TestAdvance_StrictlyIncreasing(t *testing.T) {
	for _, f := range []recurring.Frequency{recurring.Weekly, recurring.Monthly, recurring.Yearly} {
		d := date(2023, 1, 31)

		for range 30 {
			next, err := recurring.Advance(d, f)
			require.NoError(t, err)
			require.True(t, next.After(d), "%s: %s -> %s", f, d, next)

			d = next
		}
	}
}

func TestAdvance_Errors(t *testing.T) {
	_, err := recurring.Advance(time.Time{}, recurring.Monthly)
	assert.ErrorIs(t, err, errs.ErrInvalidDate)

	_, err = recurring.Advance(date(2024, 1, 1), recurring.Frequency("daily"))
	assert.True(t, errs.IsValidation(err))
}

func TestParseDue(t *testing.T) {
	got, err := recurring.ParseDue("2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, date(2024, 1, 31), got)

	_, err = recurring.ParseDue("not-a-date")
	assert.ErrorIs(t, err, errs.ErrInvalidDate)
}

func TestOccurrences(t *testing.T) {
	p := &recurring.Payment{Frequency: recurring.Weekly, NextDue: date(2024, 3, 4)}

	got := recurring.Occurrences(p, date(2024, 3, 1), date(2024, 3, 20))
	assert.Equal(t, []time.Time{date(2024, 3, 4), date(2024, 3, 11), date(2024, 3, 18)}, got)

	got = recurring.Occurrences(p, date(2024, 3, 12), date(2024, 3, 17))
	assert.Empty(t, got)

	monthly := &recurring.Payment{Frequency: recurring.Monthly, NextDue: date(2024, 1, 31)}
	got = recurring.Occurrences(monthly, date(2024, 1, 1), date(2024, 4, 30))
	assert.Equal(t, []time.Time{date(2024, 1, 31), date(2024, 2, 29), date(2024, 3, 29), date(2024, 4, 29)}, got)

	assert.Empty(t, recurring.Occurrences(&recurring.Payment{Frequency: "daily", NextDue: date(2024, 5, 1)}, date(2024, 1, 1), date(2024, 4, 1)))
}
