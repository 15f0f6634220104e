package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDay(t *testing.T) {
	in := time.Date(2024, time.March, 14, 17, 45, 12, 999, time.UTC)
	got := NormalizeDay(in)

	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 14, got.Day())
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, 0, got.Minute())
	assert.Equal(t, 0, got.Second())
	assert.Equal(t, 0, got.Nanosecond())

	// Idempotent: normalizing a midnight changes nothing.
	assert.True(t, got.Equal(NormalizeDay(got)))
}

func TestStartOfWeekIsMonday(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"wednesday", time.Date(2024, time.January, 17, 13, 0, 0, 0, time.UTC), time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)},
		{"monday stays", time.Date(2024, time.January, 15, 23, 59, 0, 0, time.UTC), time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)},
		{"sunday maps six days back", time.Date(2024, time.January, 21, 8, 0, 0, 0, time.UTC), time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)},
		{"saturday", time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC), time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := StartOfWeek(tc.in)
			assert.True(t, tc.want.Equal(got), "got %v", got)
			assert.Equal(t, time.Monday, got.Weekday())
		})
	}
}

func TestDaysInWeek(t *testing.T) {
	days := DaysInWeek(time.Date(2024, time.January, 18, 10, 30, 0, 0, time.UTC))
	require.Len(t, days, 7)

	assert.Equal(t, time.Monday, days[0].Weekday())
	for i, d := range days {
		assert.True(t, d.Equal(NormalizeDay(d)), "day %d not normalized", i)
		if i > 0 {
			assert.True(t, d.Equal(days[i-1].AddDate(0, 0, 1)), "days not consecutive at %d", i)
		}
	}
}

func TestDayKeyIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2024, time.June, 1, 6, 15, 0, 0, time.UTC)
	night := time.Date(2024, time.June, 1, 23, 50, 0, 0, time.UTC)
	nextDay := time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, DayKey(morning), DayKey(night))
	assert.NotEqual(t, DayKey(morning), DayKey(nextDay))
}
