package controllers

import (
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/keshavagr273/ClassMate/src/lib"
	"gorm.io/gorm"
)

// GetPublicProfile returns the public profile of a user by ID. Used by the
// client to show requester and teacher details next to matches and requests.
func GetPublicProfile(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid user ID format",
		})
	}

	user, err := lib.FindUserByID(uint(userID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "User not found",
			})
		}
		slog.Error("finding user", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.JSON(user.ToDto())
}
