package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateAccessToken creates a short-lived access token for the user.
func GenerateAccessToken(userID uint, email string) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["user_id"] = userID
	claims["email"] = email
	claims["exp"] = time.Now().Add(15 * time.Minute).Unix() // access token lives 15 minutes
	secret := os.Getenv("JWT_SECRET")
	return token.SignedString([]byte(secret))
}

// GenerateRefreshToken creates a refresh token with a longer lifetime.
func GenerateRefreshToken(userID uint) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["user_id"] = userID
	claims["type"] = "refresh"
	claims["exp"] = time.Now().Add(7 * 24 * time.Hour).Unix() // refresh token lives 7 days
	refreshSecret := os.Getenv("JWT_REFRESH_SECRET")
	return token.SignedString([]byte(refreshSecret))
}

// ParseRefreshToken validates a refresh token and returns the user id.
func ParseRefreshToken(tokenStr string) (uint, bool) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(os.Getenv("JWT_REFRESH_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return 0, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["type"] != "refresh" {
		return 0, false
	}
	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, false
	}
	return uint(userIDFloat), true
}
