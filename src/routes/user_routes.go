package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/keshavagr273/ClassMate/src/controllers"
	"github.com/keshavagr273/ClassMate/src/middleware"
)

// UserRoutes sets up user-related routes for public profiles.
func UserRoutes(app *fiber.App) {
	user := app.Group("/api/v1/users", middleware.ProtectRoute)

	user.Get("/:id", controllers.GetPublicProfile)
}
