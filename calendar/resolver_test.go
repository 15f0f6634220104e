package calendar

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Damien-Lo/PersonalAssistantNative/models"
)

func dailyEvent(start time.Time) models.CalendarEvent {
	return models.CalendarEvent{
		ID:        1,
		Title:     "Lunch",
		Type:      models.EventTypeDining,
		Meal:      models.MealLunch,
		StartDate: start,
		EndDate:   start.Add(time.Hour),
		Repeat:    models.RepeatDaily,
	}
}

func TestBaseOccurrenceAlwaysMatchesItsOwnDate(t *testing.T) {
	start := time.Date(2024, time.January, 15, 12, 30, 0, 0, time.UTC)

	for _, repeat := range []string{models.RepeatNone, models.RepeatDaily, models.RepeatWeekly, models.RepeatMonthly} {
		e := dailyEvent(start)
		e.Repeat = repeat

		occs, err := OccurrencesOnDay([]models.CalendarEvent{e}, start)
		require.NoError(t, err)
		require.Len(t, occs, 1, "repeat=%s", repeat)
		assert.False(t, occs[0].Virtual)
		assert.Equal(t, "1", occs[0].WrapID)
	}
}

func TestNonRecurringEventNeverProducesVirtualOccurrences(t *testing.T) {
	e := dailyEvent(time.Date(2024, time.January, 15, 12, 30, 0, 0, time.UTC))
	e.Repeat = models.RepeatNone

	for _, offset := range []int{-3, -1, 1, 2, 40} {
		occs, err := OccurrencesOnDay([]models.CalendarEvent{e}, e.StartDate.AddDate(0, 0, offset))
		require.NoError(t, err)
		assert.Empty(t, occs, "offset %d", offset)
	}
}

func TestDailyRepeatEmitsVirtualOccurrences(t *testing.T) {
	e := dailyEvent(time.Date(2024, time.January, 15, 12, 30, 0, 0, time.UTC))

	occs, err := OccurrencesOnDay([]models.CalendarEvent{e}, time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, occs, 1)
	assert.True(t, occs[0].Virtual)
	assert.Equal(t, "1_ghost_2024-03-02", occs[0].WrapID)

	// Days before the series began render nothing.
	occs, err = OccurrencesOnDay([]models.CalendarEvent{e}, time.Date(2024, time.January, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, occs)
}

func TestSkipSuppressesExactlyOneDate(t *testing.T) {
	e := dailyEvent(time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC))
	skipped := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	e.SkipRenderDays = []time.Time{skipped}

	occs, err := OccurrencesOnDay([]models.CalendarEvent{e}, skipped)
	require.NoError(t, err)
	assert.Empty(t, occs)

	// Membership is by calendar day, not Time equality.
	occs, err = OccurrencesOnDay([]models.CalendarEvent{e}, skipped.Add(15*time.Hour))
	require.NoError(t, err)
	assert.Empty(t, occs)

	for _, day := range []time.Time{skipped.AddDate(0, 0, -1), skipped.AddDate(0, 0, 1)} {
		occs, err := OccurrencesOnDay([]models.CalendarEvent{e}, day)
		require.NoError(t, err)
		require.Len(t, occs, 1)
		assert.True(t, occs[0].Virtual)
	}
}

func TestWeeklyRepeatFiltersByWeekday(t *testing.T) {
	// 2024-01-15 is a Monday; repeat on Mondays and Wednesdays.
	e := dailyEvent(time.Date(2024, time.January, 15, 18, 0, 0, 0, time.UTC))
	e.Repeat = models.RepeatWeekly
	e.RepeatDays = []int{1, 3}

	wednesday := time.Date(2024, time.January, 17, 0, 0, 0, 0, time.UTC)
	occs, err := OccurrencesOnDay([]models.CalendarEvent{e}, wednesday)
	require.NoError(t, err)
	require.Len(t, occs, 1)
	assert.True(t, occs[0].Virtual)

	tuesday := time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC)
	occs, err = OccurrencesOnDay([]models.CalendarEvent{e}, tuesday)
	require.NoError(t, err)
	assert.Empty(t, occs)
}

func TestWeeklyRepeatWithNoDaysNeverMatches(t *testing.T) {
	e := dailyEvent(time.Date(2024, time.January, 15, 18, 0, 0, 0, time.UTC))
	e.Repeat = models.RepeatWeekly
	e.RepeatDays = nil

	occs, err := OccurrencesOnDay([]models.CalendarEvent{e}, e.StartDate.AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.Empty(t, occs)
}

func TestMonthlyRepeatMatchesDayOfMonth(t *testing.T) {
	e := dailyEvent(time.Date(2024, time.January, 15, 8, 0, 0, 0, time.UTC))
	e.Repeat = models.RepeatMonthly

	occs, err := OccurrencesOnDay([]models.CalendarEvent{e}, time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, occs, 1)
	assert.True(t, occs[0].Virtual)

	occs, err = OccurrencesOnDay([]models.CalendarEvent{e}, time.Date(2024, time.February, 16, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, occs)
}

func TestMonthlyRepeatSkipsShortMonths(t *testing.T) {
	// Series anchored on the 31st simply has no occurrence in a 30-day month.
	e := dailyEvent(time.Date(2024, time.January, 31, 8, 0, 0, 0, time.UTC))
	e.Repeat = models.RepeatMonthly

	for day := 1; day <= 30; day++ {
		occs, err := OccurrencesOnDay([]models.CalendarEvent{e}, time.Date(2024, time.April, day, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Empty(t, occs, "april %d", day)
	}

	occs, err := OccurrencesOnDay([]models.CalendarEvent{e}, time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, occs, 1)
}

func TestRepeatUntilBoundaryIsExclusive(t *testing.T) {
	e := dailyEvent(time.Date(2024, time.January, 1, 7, 0, 0, 0, time.UTC))
	until := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	e.RepeatUntil = &until

	occs, err := OccurrencesOnDay([]models.CalendarEvent{e}, time.Date(2024, time.January, 9, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, occs, 1)

	for _, day := range []time.Time{until, until.AddDate(0, 0, 1), until.AddDate(0, 1, 0)} {
		occs, err := OccurrencesOnDay([]models.CalendarEvent{e}, day)
		require.NoError(t, err)
		assert.Empty(t, occs, "day %v", day)
	}
}

func TestOutputOrderFollowsInputOrder(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	a := dailyEvent(start)
	a.ID = 10
	b := dailyEvent(start)
	b.ID = 20

	occs, err := OccurrencesOnDay([]models.CalendarEvent{a, b}, start.AddDate(0, 0, 5))
	require.NoError(t, err)
	require.Len(t, occs, 2)
	assert.Equal(t, uint(10), occs[0].Event.ID)
	assert.Equal(t, uint(20), occs[1].Event.ID)
}

func TestMissingDatesFailFast(t *testing.T) {
	e := models.CalendarEvent{ID: 7, Title: "broken", Repeat: models.RepeatDaily}

	_, err := OccurrencesOnDay([]models.CalendarEvent{e}, time.Now())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidEvent))
}
