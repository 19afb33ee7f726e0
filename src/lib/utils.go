package lib

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/keshavagr273/ClassMate/src/models"
)

// JWTSecret is overridden from config at boot.
var JWTSecret = "fallback-secret-key"

// MessageResponse returns a map with a message key for API responses.
func MessageResponse(message string) fiber.Map {
	return fiber.Map{
		"message": message,
	}
}

// GenerateJWT generates a JWT token for the given user ID.
func GenerateJWT(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"userId": float64(userID),
		"exp":    time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(JWTSecret))
}

// VerifyJWT verifies and decodes a JWT token, returning its claims.
func VerifyJWT(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(JWTSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
}

// FindUserByID searches for a user by ID and excludes the password from the result.
func FindUserByID(userID uint) (*models.User, error) {
	var user models.User
	err := DB.Select("id", "name", "email", "branch", "semester").
		First(&user, userID).Error

	if err != nil {
		return nil, err
	}

	return &user, nil
}
