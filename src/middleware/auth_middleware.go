package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/keshavagr273/ClassMate/src/lib"
	"github.com/keshavagr273/ClassMate/src/models"
)

// ProtectRoute checks for a valid JWT token, authenticates the user, and
// attaches the user record to the request context.
func ProtectRoute(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized - no token provided",
		})
	}

	// Expected format: "Bearer <token>"
	var token string
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		token = authHeader[7:]
	} else {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized - invalid token format",
		})
	}

	decoded, err := lib.VerifyJWT(token)
	if err != nil || decoded == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized - invalid token",
		})
	}

	userID, ok := decoded["userId"].(float64)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized - invalid token",
		})
	}

	var user models.User
	if err := lib.DB.First(&user, uint(userID)).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "User not found",
		})
	}

	user.Password = ""

	c.Locals("user", user)

	return c.Next()
}
