package models

import (
	"time"

	"gorm.io/gorm"
)

// Event types.
const (
	EventTypeGeneral = "General Event"
	EventTypeDining  = "Dining Event"
	EventTypeToDo    = "To Do Item"
)

// Repeat frequencies.
const (
	RepeatNone    = "none"
	RepeatDaily   = "daily"
	RepeatWeekly  = "weekly"
	RepeatMonthly = "monthly"
)

// Meal slots for dining events.
const (
	MealBreakfast = "Breakfast"
	MealLunch     = "Lunch"
	MealDinner    = "Dinner"
	MealSnack     = "Snack"
)

// DishListEntry is one embedded row of a dining event's dish list.
type DishListEntry struct {
	DishID       uint `json:"dishObject"`
	LoggedStatus bool `json:"loggedStatus"`
}

// CalendarEvent is the base record of a (possibly recurring) series.
// StartDate anchors the first occurrence; recurring occurrences are computed
// on read and never persisted.
type CalendarEvent struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OwnerID uint `gorm:"index;not null" json:"owner"`

	Type        string `gorm:"size:50;not null;default:'General Event'" json:"type"`
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"size:1000" json:"description"`

	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`

	// Repeat is one of RepeatNone/Daily/Weekly/Monthly. RepeatUntil is nil
	// when the series repeats forever. RepeatDays (0=Sunday..6=Saturday) is
	// only consulted for weekly repeats.
	Repeat      string     `gorm:"size:20;not null;default:'none'" json:"repeat"`
	RepeatUntil *time.Time `json:"repeatUntil"`
	RepeatDays  []int      `gorm:"serializer:json" json:"repeatDays"`

	// SkipRenderDays holds normalized midnights on which the series renders
	// nothing: explicit skips and days forked off into standalone events.
	SkipRenderDays []time.Time `gorm:"serializer:json" json:"skipRenderDays"`

	Attendees []string `gorm:"serializer:json" json:"attendees"`

	// Dining event fields.
	Meal     string          `gorm:"size:20" json:"meal,omitempty"`
	DishList []DishListEntry `gorm:"serializer:json" json:"dishList"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
