package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Damien-Lo/PersonalAssistantNative/config"
	"github.com/Damien-Lo/PersonalAssistantNative/models"
)

/* ---------- JSON input structures (Ingredient) ---------- */

// IngredientInput covers both create (values) and patch (nil = untouched).
type IngredientInput struct {
	Name              *string    `json:"name"`
	Description       *string    `json:"description"`
	Category          *string    `json:"category"`
	Brand             *string    `json:"brand"`
	ExpiryDate        *time.Time `json:"expiryDate"`
	PortionsAvailable *float64   `json:"portionsAvaliable"`
	PortionUnit       *string    `json:"portionUnit"`
	Calories          *float64   `json:"calories"`
	Protein           *float64   `json:"protein"`
	Carbs             *float64   `json:"carbs"`
	Fats              *float64   `json:"fats"`
	Fiber             *float64   `json:"fiber"`
	Sodium            *float64   `json:"sodium"`
}

func (in *IngredientInput) apply(ing *models.Ingredient) {
	if in.Name != nil {
		ing.Name = *in.Name
	}
	if in.Description != nil {
		ing.Description = *in.Description
	}
	if in.Category != nil {
		ing.Category = *in.Category
	}
	if in.Brand != nil {
		ing.Brand = *in.Brand
	}
	if in.ExpiryDate != nil {
		ing.ExpiryDate = in.ExpiryDate
	}
	if in.PortionsAvailable != nil {
		ing.PortionsAvailable = in.PortionsAvailable
	}
	if in.PortionUnit != nil {
		ing.PortionUnit = *in.PortionUnit
	}
	if in.Calories != nil {
		ing.Calories = *in.Calories
	}
	if in.Protein != nil {
		ing.Protein = *in.Protein
	}
	if in.Carbs != nil {
		ing.Carbs = *in.Carbs
	}
	if in.Fats != nil {
		ing.Fats = *in.Fats
	}
	if in.Fiber != nil {
		ing.Fiber = *in.Fiber
	}
	if in.Sodium != nil {
		ing.Sodium = *in.Sodium
	}
}

/* ---------- Handlers for Ingredient ---------- */

// GetIngredients returns all ingredients owned by the caller.
func GetIngredients(c *fiber.Ctx) error {
	claims := c.Locals("user").(jwt.MapClaims)
	userID := uint(claims["user_id"].(float64))

	var ingredients []models.Ingredient
	if err := config.DB.Where("owner_id = ?", userID).Find(&ingredients).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching ingredients"})
	}
	return c.JSON(ingredients)
}

// GetIngredient returns one owned ingredient by id.
func GetIngredient(c *fiber.Ctx) error {
	claims := c.Locals("user").(jwt.MapClaims)
	userID := uint(claims["user_id"].(float64))

	var ingredient models.Ingredient
	if err := config.DB.Where("owner_id = ?", userID).First(&ingredient, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Ingredient not found"})
	}
	return c.JSON(ingredient)
}

// CreateIngredient stores a new ingredient for the caller.
func CreateIngredient(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing JWT claims"})
	}
	userID := uint(claims["user_id"].(float64))

	var input IngredientInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	ingredient := models.Ingredient{
		OwnerID:  userID,
		Name:     "Unnamed Ingredient",
		Category: "Uncategorised",
		Brand:    "Generic",
	}
	input.apply(&ingredient)

	if err := config.DB.Create(&ingredient).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error creating ingredient"})
	}
	return c.Status(fiber.StatusCreated).JSON(ingredient)
}

// UpdateIngredient patches the provided fields of an owned ingredient.
func UpdateIngredient(c *fiber.Ctx) error {
	claims := c.Locals("user").(jwt.MapClaims)
	userID := uint(claims["user_id"].(float64))

	var ingredient models.Ingredient
	if err := config.DB.Where("owner_id = ?", userID).First(&ingredient, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Ingredient not found"})
	}

	var input IngredientInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	input.apply(&ingredient)

	if err := config.DB.Save(&ingredient).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error updating ingredient"})
	}
	return c.JSON(ingredient)
}

// DeleteIngredient removes an owned ingredient.
func DeleteIngredient(c *fiber.Ctx) error {
	claims := c.Locals("user").(jwt.MapClaims)
	userID := uint(claims["user_id"].(float64))

	var ingredient models.Ingredient
	if err := config.DB.Where("owner_id = ?", userID).First(&ingredient, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Ingredient not found"})
	}

	if err := config.DB.Delete(&ingredient).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error deleting ingredient"})
	}
	return c.JSON(fiber.Map{"message": "Ingredient deleted successfully", "deleted": ingredient})
}
