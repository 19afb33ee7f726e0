package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/keshavagr273/ClassMate/src/controllers"
	"github.com/keshavagr273/ClassMate/src/middleware"
)

// SkillExchangeRoutes sets up the skill exchange routes: declarations,
// matches, and connection requests.
func SkillExchangeRoutes(app *fiber.App, ctrl *controllers.SkillExchangeController) {
	se := app.Group("/api/v1/skill-exchange", middleware.ProtectRoute)

	se.Post("/add-skill", ctrl.AddUserSkill)
	se.Get("/skills", ctrl.GetAllSkills)
	se.Get("/my-skills", ctrl.GetUserSkills)
	se.Get("/matches", ctrl.GetSkillMatches)
	se.Post("/request", ctrl.SendSkillRequest)
	se.Get("/requests", ctrl.GetSkillRequests)
	se.Delete("/user-skill/:id", ctrl.DeleteUserSkill)
}
