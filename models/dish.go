package models

import "time"

// IngredientListEntry is one embedded row of a dish's ingredient list.
type IngredientListEntry struct {
	IngredientID uint    `json:"ingredientObject"`
	Amount       float64 `json:"amount"`
}

// Dish embeds its ingredient list and an optional nutrition summary.
type Dish struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OwnerID uint `gorm:"index;not null" json:"owner"`

	Name        string `gorm:"size:200;not null;default:'Unnamed Dish'" json:"name"`
	Description string `gorm:"size:1000" json:"description"`
	Category    string `gorm:"size:100;not null;default:'Uncategorised'" json:"category"`

	// Meals this dish is suitable for ("Breakfast", "Lunch", ...).
	Meals []string `gorm:"serializer:json" json:"meals"`

	IngredientsList []IngredientListEntry `gorm:"serializer:json" json:"ingredientsList"`

	Recipe     string `gorm:"size:5000" json:"recipe"`
	Restaurant string `gorm:"size:200" json:"restaurant"`

	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Fiber    float64 `json:"fiber"`
	Sodium   float64 `json:"sodium"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
