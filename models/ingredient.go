package models

import "time"

// Ingredient is a stock item with a nutrition profile per portion.
type Ingredient struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OwnerID uint `gorm:"index;not null" json:"owner"`

	Name        string `gorm:"size:200;not null;default:'Unnamed Ingredient'" json:"name"`
	Description string `gorm:"size:1000" json:"description"`
	Category    string `gorm:"size:100;not null;default:'Uncategorised'" json:"category"`
	Brand       string `gorm:"size:100;default:'Generic'" json:"brand"`

	ExpiryDate *time.Time `json:"expiryDate,omitempty"`

	// PortionsAvailable is nil when the user does not track stock for this item.
	PortionsAvailable *float64 `json:"portionsAvaliable"`
	PortionUnit       string   `gorm:"size:50" json:"portionUnit"`

	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Fiber    float64 `json:"fiber"`
	Sodium   float64 `json:"sodium"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
