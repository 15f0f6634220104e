package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/Damien-Lo/PersonalAssistantNative/models"
)

// ErrNotFound is returned when the base event vanished before the edit
// could be applied (deleted concurrently). No mutation is performed.
var ErrNotFound = errors.New("calendar event not found")

// EventStore is the slice of the persistence layer the splitter writes
// through. Implementations must scope reads and writes to the owner.
type EventStore interface {
	GetEvent(ownerID, id uint) (models.CalendarEvent, error)
	UpdateEvent(event models.CalendarEvent) (models.CalendarEvent, error)
	CreateEvent(event models.CalendarEvent) (models.CalendarEvent, error)
}

// PartialFailureError reports a split whose two writes did not both
// succeed, with enough context for the caller to retry the missing half.
// BaseUpdated=true means the skip day was recorded but the fork was not
// created: the occurrence would silently disappear until retried.
type PartialFailureError struct {
	BaseUpdated bool
	Err         error
}

func (e *PartialFailureError) Error() string {
	if e.BaseUpdated {
		return fmt.Sprintf("series split incomplete: base updated but fork not created: %v", e.Err)
	}
	return fmt.Sprintf("series split incomplete: base not updated: %v", e.Err)
}

func (e *PartialFailureError) Unwrap() error { return e.Err }

// Splitter persists single-occurrence edits through an EventStore.
type Splitter struct {
	Store EventStore
}

// ApplyEdit applies edited to one displayed occurrence of the event
// identified by baseID. Editing the base occurrence itself updates the
// record in place; editing a virtual occurrence splits the series via
// MaterializeEdit. The base update is written first so a failure leaves
// at worst a visible duplicate, never a silently skipped day.
func (s *Splitter) ApplyEdit(ownerID, baseID uint, occurrenceDate time.Time, virtual bool, edited models.CalendarEvent) (models.CalendarEvent, *models.CalendarEvent, error) {
	base, err := s.Store.GetEvent(ownerID, baseID)
	if err != nil {
		return models.CalendarEvent{}, nil, fmt.Errorf("%w: event %d: %v", ErrNotFound, baseID, err)
	}

	if !virtual || DayKey(occurrenceDate) == DayKey(base.StartDate) {
		edited.ID = base.ID
		edited.OwnerID = base.OwnerID
		updated, err := s.Store.UpdateEvent(edited)
		if err != nil {
			return models.CalendarEvent{}, nil, err
		}
		return updated, nil, nil
	}

	updatedBase, newEvent, err := MaterializeEdit(base, occurrenceDate, edited)
	if err != nil {
		return models.CalendarEvent{}, nil, err
	}

	savedBase, err := s.Store.UpdateEvent(updatedBase)
	if err != nil {
		return models.CalendarEvent{}, nil, &PartialFailureError{BaseUpdated: false, Err: err}
	}
	savedNew, err := s.Store.CreateEvent(newEvent)
	if err != nil {
		return savedBase, nil, &PartialFailureError{BaseUpdated: true, Err: err}
	}
	return savedBase, &savedNew, nil
}
