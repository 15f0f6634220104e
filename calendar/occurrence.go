package calendar

import (
	"fmt"
	"time"

	"github.com/Damien-Lo/PersonalAssistantNative/models"
)

// Occurrence is one calendar appearance of an event on a specific day:
// either the base record itself (Virtual=false, the document's own
// startDate) or a computed instance of a recurring series on some other
// day (Virtual=true). Virtual occurrences are never persisted.
type Occurrence struct {
	Event   *models.CalendarEvent `json:"event"`
	Day     time.Time             `json:"day"`
	Virtual bool                  `json:"isVirtual"`

	// WrapID identifies this occurrence for the UI. The base occurrence
	// uses the event id; virtual ones get "<id>_ghost_<day>".
	WrapID string `json:"wrapId"`
}

func baseOccurrence(e *models.CalendarEvent, day time.Time) Occurrence {
	return Occurrence{
		Event:  e,
		Day:    day,
		WrapID: fmt.Sprintf("%d", e.ID),
	}
}

func virtualOccurrence(e *models.CalendarEvent, day time.Time) Occurrence {
	return Occurrence{
		Event:   e,
		Day:     day,
		Virtual: true,
		WrapID:  fmt.Sprintf("%d_ghost_%s", e.ID, day.Format("2006-01-02")),
	}
}
