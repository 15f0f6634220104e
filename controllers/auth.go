package controllers

import (
	"log"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Damien-Lo/PersonalAssistantNative/config"
	"github.com/Damien-Lo/PersonalAssistantNative/mail"
	"github.com/Damien-Lo/PersonalAssistantNative/models"
	"github.com/Damien-Lo/PersonalAssistantNative/utils"
)

/* ---------- JSON input structures (Auth) ---------- */

type CredentialsInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshInput struct {
	Refresh string `json:"refresh"`
}

/* ---------- Handlers for Auth ---------- */

// Register creates a new account and returns a fresh token pair.
func Register(c *fiber.Ctx) error {
	var input CredentialsInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email and password required"})
	}

	var existing models.User
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already in use"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not hash password"})
	}

	user := models.User{
		Email:          email,
		PasswordHash:   string(hash),
		ActivationLink: uuid.NewString(),
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create user"})
	}

	// Activation mail is best-effort; registration succeeds without SMTP.
	mailService := mail.NewMailService()
	if mailService.Configured() {
		link := os.Getenv("CLIENT_URL") + "/auth/activate/" + user.ActivationLink
		go func() {
			if err := mailService.SendActivationMail(user.Email, link); err != nil {
				log.Println("send activation mail:", err)
			}
		}()
	}

	return tokenResponse(c, user)
}

// Login verifies credentials and returns a fresh token pair.
func Login(c *fiber.Ctx) error {
	var input CredentialsInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email and password required"})
	}

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	return tokenResponse(c, user)
}

// Refresh exchanges a valid refresh token for a new access token.
func Refresh(c *fiber.Ctx) error {
	var input RefreshInput
	if err := c.BodyParser(&input); err != nil || input.Refresh == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing refresh"})
	}

	userID, ok := utils.ParseRefreshToken(input.Refresh)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired refresh"})
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}

	access, err := utils.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not sign token"})
	}
	return c.JSON(fiber.Map{"access": access})
}

// Me returns the account behind the presented access token.
func Me(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing JWT claims"})
	}
	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user_id"})
	}

	var user models.User
	if err := config.DB.First(&user, uint(userIDFloat)).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}
	return c.JSON(fiber.Map{"user": fiber.Map{"id": user.ID, "email": user.Email}})
}

// Activate flips the account to activated via the mailed link token.
func Activate(c *fiber.Ctx) error {
	link := c.Params("link")

	var user models.User
	if err := config.DB.Where("activation_link = ?", link).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Activation link not found"})
	}

	user.IsActivated = true
	if err := config.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not activate account"})
	}
	return c.JSON(fiber.Map{"message": "Account activated"})
}

func tokenResponse(c *fiber.Ctx, user models.User) error {
	access, err := utils.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not sign token"})
	}
	refresh, err := utils.GenerateRefreshToken(user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not sign token"})
	}
	return c.JSON(fiber.Map{
		"access":  access,
		"refresh": refresh,
		"user":    fiber.Map{"id": user.ID, "email": user.Email},
	})
}
