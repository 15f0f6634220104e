package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Damien-Lo/PersonalAssistantNative/config"
	"github.com/Damien-Lo/PersonalAssistantNative/models"
)

/* ---------- JSON input structures (Dish) ---------- */

// DishInput covers both create (values) and patch (nil = untouched).
type DishInput struct {
	Name            *string                       `json:"name"`
	Description     *string                       `json:"description"`
	Category        *string                       `json:"category"`
	Meals           *[]string                     `json:"meals"`
	IngredientsList *[]models.IngredientListEntry `json:"ingredientsList"`
	Recipe          *string                       `json:"recipe"`
	Restaurant      *string                       `json:"restaurant"`
	Calories        *float64                      `json:"calories"`
	Protein         *float64                      `json:"protein"`
	Carbs           *float64                      `json:"carbs"`
	Fats            *float64                      `json:"fats"`
	Fiber           *float64                      `json:"fiber"`
	Sodium          *float64                      `json:"sodium"`
}

func (in *DishInput) apply(dish *models.Dish) {
	if in.Name != nil {
		dish.Name = *in.Name
	}
	if in.Description != nil {
		dish.Description = *in.Description
	}
	if in.Category != nil {
		dish.Category = *in.Category
	}
	if in.Meals != nil {
		dish.Meals = *in.Meals
	}
	if in.IngredientsList != nil {
		dish.IngredientsList = *in.IngredientsList
	}
	if in.Recipe != nil {
		dish.Recipe = *in.Recipe
	}
	if in.Restaurant != nil {
		dish.Restaurant = *in.Restaurant
	}
	if in.Calories != nil {
		dish.Calories = *in.Calories
	}
	if in.Protein != nil {
		dish.Protein = *in.Protein
	}
	if in.Carbs != nil {
		dish.Carbs = *in.Carbs
	}
	if in.Fats != nil {
		dish.Fats = *in.Fats
	}
	if in.Sodium != nil {
		dish.Sodium = *in.Sodium
	}
	if in.Fiber != nil {
		dish.Fiber = *in.Fiber
	}
}

/* ---------- Handlers for Dish ---------- */

// GetDishes returns all dishes owned by the caller.
func GetDishes(c *fiber.Ctx) error {
	claims := c.Locals("user").(jwt.MapClaims)
	userID := uint(claims["user_id"].(float64))

	var dishes []models.Dish
	if err := config.DB.Where("owner_id = ?", userID).Find(&dishes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching dishes"})
	}
	return c.JSON(dishes)
}

// GetDish returns one owned dish by id.
func GetDish(c *fiber.Ctx) error {
	claims := c.Locals("user").(jwt.MapClaims)
	userID := uint(claims["user_id"].(float64))

	var dish models.Dish
	if err := config.DB.Where("owner_id = ?", userID).First(&dish, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Dish not found"})
	}
	return c.JSON(dish)
}

// CreateDish stores a new dish for the caller.
func CreateDish(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing JWT claims"})
	}
	userID := uint(claims["user_id"].(float64))

	var input DishInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	dish := models.Dish{
		OwnerID:  userID,
		Name:     "Unnamed Dish",
		Category: "Uncategorised",
	}
	input.apply(&dish)

	if err := config.DB.Create(&dish).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error creating dish"})
	}
	return c.Status(fiber.StatusCreated).JSON(dish)
}

// UpdateDish patches the provided fields of an owned dish.
func UpdateDish(c *fiber.Ctx) error {
	claims := c.Locals("user").(jwt.MapClaims)
	userID := uint(claims["user_id"].(float64))

	var dish models.Dish
	if err := config.DB.Where("owner_id = ?", userID).First(&dish, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Dish not found"})
	}

	var input DishInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	input.apply(&dish)

	if err := config.DB.Save(&dish).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error updating dish"})
	}
	return c.JSON(dish)
}

// DeleteDish removes an owned dish.
func DeleteDish(c *fiber.Ctx) error {
	claims := c.Locals("user").(jwt.MapClaims)
	userID := uint(claims["user_id"].(float64))

	var dish models.Dish
	if err := config.DB.Where("owner_id = ?", userID).First(&dish, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Dish not found"})
	}

	if err := config.DB.Delete(&dish).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error deleting dish"})
	}
	return c.JSON(fiber.Map{"message": "Dish deleted successfully", "deleted": dish})
}
