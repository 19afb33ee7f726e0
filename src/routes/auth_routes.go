package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/keshavagr273/ClassMate/src/controllers"
	"github.com/keshavagr273/ClassMate/src/middleware"
)

// AuthRoutes sets up authentication-related routes for signup, login, logout,
// and getting the current user.
func AuthRoutes(app *fiber.App) {
	auth := app.Group("/api/v1/auth")

	auth.Post("/signup", controllers.Signup)
	auth.Post("/login", controllers.Login)
	auth.Post("/logout", controllers.Logout)
	auth.Get("/me", middleware.ProtectRoute, controllers.GetCurrentUser)
}
