package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Damien-Lo/PersonalAssistantNative/calendar"
	"github.com/Damien-Lo/PersonalAssistantNative/config"
	"github.com/Damien-Lo/PersonalAssistantNative/models"
)

/* ---------- JSON input structures (CalendarEvent) ---------- */

// CalendarEventInput covers both create (values) and patch (nil = untouched).
type CalendarEventInput struct {
	Type           *string                 `json:"type"`
	Title          *string                 `json:"title"`
	Description    *string                 `json:"description"`
	StartDate      *time.Time              `json:"startDate"`
	EndDate        *time.Time              `json:"endDate"`
	Repeat         *string                 `json:"repeat"`
	RepeatUntil    *time.Time              `json:"repeatUntil"`
	RepeatDays     *[]int                  `json:"repeatDays"`
	SkipRenderDays *[]time.Time            `json:"skipRenderDays"`
	Attendees      *[]string               `json:"attendees"`
	Meal           *string                 `json:"meal"`
	DishList       *[]models.DishListEntry `json:"dishList"`
}

func (in *CalendarEventInput) apply(e *models.CalendarEvent) {
	if in.Type != nil {
		e.Type = *in.Type
	}
	if in.Title != nil {
		e.Title = *in.Title
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.StartDate != nil {
		e.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		e.EndDate = *in.EndDate
	}
	if in.Repeat != nil {
		e.Repeat = *in.Repeat
	}
	if in.RepeatUntil != nil {
		e.RepeatUntil = in.RepeatUntil
	}
	if in.RepeatDays != nil {
		e.RepeatDays = *in.RepeatDays
	}
	if in.SkipRenderDays != nil {
		// Stored skip days are always normalized midnights.
		days := make([]time.Time, len(*in.SkipRenderDays))
		for i, d := range *in.SkipRenderDays {
			days[i] = calendar.NormalizeDay(d)
		}
		e.SkipRenderDays = days
	}
	if in.Attendees != nil {
		e.Attendees = *in.Attendees
	}
	if in.Meal != nil {
		e.Meal = *in.Meal
	}
	if in.DishList != nil {
		e.DishList = *in.DishList
	}
}

// MaterializeInput carries an edit to a single displayed occurrence.
type MaterializeInput struct {
	OccurrenceDate time.Time          `json:"occurrenceDate"`
	IsVirtual      bool               `json:"isVirtual"`
	Event          CalendarEventInput `json:"event"`
}

func validateEvent(e *models.CalendarEvent) string {
	if e.Title == "" {
		return "title is required"
	}
	if e.StartDate.IsZero() || e.EndDate.IsZero() {
		return "startDate and endDate are required"
	}
	if e.EndDate.Before(e.StartDate) {
		return "startDate must not be after endDate"
	}
	switch e.Repeat {
	case models.RepeatNone, models.RepeatDaily, models.RepeatWeekly, models.RepeatMonthly:
	default:
		return "repeat must be one of none, daily, weekly, monthly"
	}
	return ""
}

/* ---------- GORM-backed store for the series splitter ---------- */

type gormEventStore struct{}

func (gormEventStore) GetEvent(ownerID, id uint) (models.CalendarEvent, error) {
	var e models.CalendarEvent
	if err := config.DB.Where("owner_id = ?", ownerID).First(&e, id).Error; err != nil {
		return models.CalendarEvent{}, err
	}
	return e, nil
}

func (gormEventStore) UpdateEvent(e models.CalendarEvent) (models.CalendarEvent, error) {
	if err := config.DB.Save(&e).Error; err != nil {
		return models.CalendarEvent{}, err
	}
	return e, nil
}

func (gormEventStore) CreateEvent(e models.CalendarEvent) (models.CalendarEvent, error) {
	if err := config.DB.Create(&e).Error; err != nil {
		return models.CalendarEvent{}, err
	}
	return e, nil
}

/* ---------- Handlers for CalendarEvent ---------- */

// GetCalendarEvents returns all calendar events owned by the caller.
func GetCalendarEvents(c *fiber.Ctx) error {
	claims := c.Locals("user").(jwt.MapClaims)
	userID := uint(claims["user_id"].(float64))

	var events []models.CalendarEvent
	if err := config.DB.Where("owner_id = ?", userID).Order("start_date ASC").Find(&events).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching calendar events"})
	}
	return c.JSON(events)
}

// GetCalendarEvent returns one owned event by id.
func GetCalendarEvent(c *fiber.Ctx) error {
	claims := c.Locals("user").(jwt.MapClaims)
	userID := uint(claims["user_id"].(float64))

	var event models.CalendarEvent
	if err := config.DB.Where("owner_id = ?", userID).First(&event, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Event not found"})
	}
	return c.JSON(event)
}

// GetCalendarEventsForDay resolves which occurrences (base and virtual)
// fall on the requested day: /api/calendarEvents/day?date=2024-01-15
func GetCalendarEventsForDay(c *fiber.Ctx) error {
	claims := c.Locals("user").(jwt.MapClaims)
	userID := uint(claims["user_id"].(float64))

	day, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date must be YYYY-MM-DD"})
	}

	var events []models.CalendarEvent
	if err := config.DB.Where("owner_id = ?", userID).Find(&events).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching calendar events"})
	}

	occurrences, err := calendar.OccurrencesOnDay(events, day)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(occurrences)
}

// CreateCalendarEvent stores a new event for the caller.
func CreateCalendarEvent(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing JWT claims"})
	}
	userID := uint(claims["user_id"].(float64))

	var input CalendarEventInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	event := models.CalendarEvent{
		OwnerID: userID,
		Type:    models.EventTypeGeneral,
		Repeat:  models.RepeatNone,
	}
	input.apply(&event)
	if msg := validateEvent(&event); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	if err := config.DB.Create(&event).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error creating calendar event"})
	}

	BroadcastCalendarChange(userID, "created", event)
	return c.Status(fiber.StatusCreated).JSON(event)
}

// UpdateCalendarEvent patches the provided fields of an owned event.
func UpdateCalendarEvent(c *fiber.Ctx) error {
	claims := c.Locals("user").(jwt.MapClaims)
	userID := uint(claims["user_id"].(float64))

	var event models.CalendarEvent
	if err := config.DB.Where("owner_id = ?", userID).First(&event, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Event not found"})
	}

	var input CalendarEventInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	input.apply(&event)
	if msg := validateEvent(&event); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	if err := config.DB.Save(&event).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error updating calendar event"})
	}

	BroadcastCalendarChange(userID, "updated", event)
	return c.JSON(event)
}

// DeleteCalendarEvent removes an owned event.
func DeleteCalendarEvent(c *fiber.Ctx) error {
	claims := c.Locals("user").(jwt.MapClaims)
	userID := uint(claims["user_id"].(float64))

	var event models.CalendarEvent
	if err := config.DB.Where("owner_id = ?", userID).First(&event, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Event not found"})
	}

	if err := config.DB.Delete(&event).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error deleting calendar event"})
	}

	BroadcastCalendarChange(userID, "deleted", event)
	return c.JSON(fiber.Map{"message": "CalendarEvent deleted successfully", "deleted": event})
}

// MaterializeCalendarEvent applies an edit to a single displayed
// occurrence. Editing the base occurrence updates the record in place;
// editing a virtual occurrence records a skip day on the series and
// creates a standalone fork carrying the edited fields.
func MaterializeCalendarEvent(c *fiber.Ctx) error {
	claims := c.Locals("user").(jwt.MapClaims)
	userID := uint(claims["user_id"].(float64))

	var input MaterializeInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if input.OccurrenceDate.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "occurrenceDate is required"})
	}

	var base models.CalendarEvent
	if err := config.DB.Where("owner_id = ?", userID).First(&base, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Event not found"})
	}

	edited := base
	if input.IsVirtual {
		// The fork defaults to a one-off event; recurrence carries over
		// only when the edit sets it explicitly.
		edited.Repeat = models.RepeatNone
		edited.RepeatUntil = nil
		edited.RepeatDays = []int{}
	}
	input.Event.apply(&edited)
	if msg := validateEvent(&edited); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	splitter := &calendar.Splitter{Store: gormEventStore{}}
	updated, created, err := splitter.ApplyEdit(userID, base.ID, input.OccurrenceDate, input.IsVirtual, edited)
	if err != nil {
		var pf *calendar.PartialFailureError
		switch {
		case errors.As(err, &pf):
			// Tell the caller which half landed so the UI can retry the rest.
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":       pf.Error(),
				"baseUpdated": pf.BaseUpdated,
			})
		case errors.Is(err, calendar.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Event not found"})
		case errors.Is(err, calendar.ErrInvalidEvent):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error saving occurrence edit"})
		}
	}

	BroadcastCalendarChange(userID, "updated", updated)
	if created != nil {
		BroadcastCalendarChange(userID, "created", *created)
	}
	return c.JSON(fiber.Map{"updatedBase": updated, "newEvent": created})
}
