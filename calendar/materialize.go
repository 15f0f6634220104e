package calendar

import (
	"fmt"
	"time"

	"github.com/Damien-Lo/PersonalAssistantNative/models"
)

// MaterializeEdit splits a recurring series at one virtual occurrence:
// the occurrence day is added to the base event's skip list, and the
// edited fields become a brand-new standalone event anchored on that
// day with the base event's original clock times. Neither result is
// persisted here; see Splitter for the write path.
func MaterializeEdit(base models.CalendarEvent, occurrenceDate time.Time, edited models.CalendarEvent) (updatedBase, newEvent models.CalendarEvent, err error) {
	if base.StartDate.IsZero() || base.EndDate.IsZero() {
		return base, newEvent, fmt.Errorf("%w: event %d has no startDate/endDate", ErrInvalidEvent, base.ID)
	}

	day := NormalizeDay(occurrenceDate)

	updatedBase = base
	if !containsDay(updatedBase.SkipRenderDays, DayKey(day)) {
		// Copy before appending so the caller's slice is left alone.
		skips := make([]time.Time, len(base.SkipRenderDays), len(base.SkipRenderDays)+1)
		copy(skips, base.SkipRenderDays)
		updatedBase.SkipRenderDays = append(skips, day)
	}

	// The fork is normally a plain one-off event, but an edit that sets
	// recurrence fields deliberately starts a new independent series
	// from this day forward.
	newEvent = edited
	newEvent.ID = 0
	newEvent.OwnerID = base.OwnerID
	if newEvent.Repeat == "" {
		newEvent.Repeat = models.RepeatNone
	}
	if newEvent.Repeat == models.RepeatNone {
		newEvent.RepeatUntil = nil
		newEvent.RepeatDays = []int{}
	}
	newEvent.SkipRenderDays = []time.Time{}
	newEvent.StartDate = atTimeOfDay(day, base.StartDate)
	newEvent.EndDate = atTimeOfDay(day, base.EndDate)

	return updatedBase, newEvent, nil
}
