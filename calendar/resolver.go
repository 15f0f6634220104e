package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/Damien-Lo/PersonalAssistantNative/models"
)

// ErrInvalidEvent marks events that violate the caller contract
// (missing startDate/endDate). Such input fails fast instead of being
// coerced into "never occurs".
var ErrInvalidEvent = errors.New("invalid calendar event")

// OccurrencesOnDay resolves which of the given events appear on day,
// expanding recurring series into virtual occurrences. Output order
// follows input order; chronological sorting is the caller's concern.
//
// For every event, exclusion is checked first and short-circuits the
// rest: a day strictly before the series began, or listed in
// skipRenderDays, renders nothing from that event no matter what the
// repeat rules would say.
func OccurrencesOnDay(events []models.CalendarEvent, day time.Time) ([]Occurrence, error) {
	target := NormalizeDay(day)
	targetKey := DayKey(target)
	weekday := int(target.Weekday())

	out := make([]Occurrence, 0, len(events))
	for i := range events {
		e := &events[i]
		if e.StartDate.IsZero() || e.EndDate.IsZero() {
			return nil, fmt.Errorf("%w: event %d has no startDate/endDate", ErrInvalidEvent, e.ID)
		}

		base := NormalizeDay(e.StartDate)
		if target.Before(base) || containsDay(e.SkipRenderDays, targetKey) {
			continue
		}

		// The literal start day always renders, whatever the repeat mode.
		if DayKey(base) == targetKey {
			out = append(out, baseOccurrence(e, target))
			continue
		}

		if e.Repeat == models.RepeatNone || e.Repeat == "" {
			continue
		}
		// repeatUntil is exclusive: the boundary day itself no longer renders.
		if e.RepeatUntil != nil && !target.Before(*e.RepeatUntil) {
			continue
		}

		switch e.Repeat {
		case models.RepeatDaily:
			out = append(out, virtualOccurrence(e, target))
		case models.RepeatWeekly:
			if containsInt(e.RepeatDays, weekday) {
				out = append(out, virtualOccurrence(e, target))
			}
		case models.RepeatMonthly:
			if target.Day() == base.Day() {
				out = append(out, virtualOccurrence(e, target))
			}
		}
	}
	return out, nil
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
