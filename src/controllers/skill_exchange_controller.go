package controllers

import (
	"log/slog"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/keshavagr273/ClassMate/src/apperrors"
	"github.com/keshavagr273/ClassMate/src/models"
	"github.com/keshavagr273/ClassMate/src/services"
)

// SkillExchangeController exposes the skill exchange engine over HTTP.
// Response shapes mirror the original client contract: every body carries a
// "success" flag.
type SkillExchangeController struct {
	catalog  services.SkillCatalogService
	registry services.SkillRegistryService
	matching services.SkillMatchingService
	requests services.SkillRequestService
	validate *validator.Validate
}

func NewSkillExchangeController(
	catalog services.SkillCatalogService,
	registry services.SkillRegistryService,
	matching services.SkillMatchingService,
	requests services.SkillRequestService,
) *SkillExchangeController {
	return &SkillExchangeController{
		catalog:  catalog,
		registry: registry,
		matching: matching,
		requests: requests,
		validate: validator.New(),
	}
}

func serviceError(c *fiber.Ctx, err error) error {
	status := apperrors.Status(err)
	if status == fiber.StatusInternalServerError {
		slog.Error("skill exchange request failed", "path", c.Path(), "error", err)
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": apperrors.Message(err),
	})
}

type addSkillBody struct {
	SkillName string `json:"skillName" validate:"required"`
	Type      string `json:"type" validate:"required"`
}

// AddUserSkill adds a skill the authenticated user wants to teach or learn.
func (ctrl *SkillExchangeController) AddUserSkill(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	var body addSkillBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}
	if err := ctrl.validate.Struct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "skillName and type are required",
		})
	}

	declaration, err := ctrl.registry.Declare(user.ID, body.SkillName, models.SkillRole(body.Type))
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":   true,
		"userSkill": declaration.ToDto(),
	})
}

// GetAllSkills returns every skill with its declaration count.
func (ctrl *SkillExchangeController) GetAllSkills(c *fiber.Ctx) error {
	skills, err := ctrl.catalog.ListAll()
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"skills":  skills,
	})
}

// GetUserSkills returns the authenticated user's skills split by role.
func (ctrl *SkillExchangeController) GetUserSkills(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	userSkills, err := ctrl.registry.ListForUser(user.ID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"teach":   userSkills.Teach,
		"learn":   userSkills.Learn,
	})
}

// GetSkillMatches returns users who teach a skill the authenticated user
// wants to learn.
func (ctrl *SkillExchangeController) GetSkillMatches(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	matches, err := ctrl.matching.ComputeMatches(user.ID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"matches": matches,
	})
}

type sendRequestBody struct {
	RecipientID uint   `json:"recipientId" validate:"required"`
	SkillID     uint   `json:"skillId" validate:"required"`
	Message     string `json:"message"`
}

// SendSkillRequest sends a connection request to a matched teacher.
func (ctrl *SkillExchangeController) SendSkillRequest(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	var body sendRequestBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}
	if err := ctrl.validate.Struct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "recipientId and skillId are required",
		})
	}

	request, warning, err := ctrl.requests.CreateRequest(c.Context(), user.ID, body.RecipientID, body.SkillID, body.Message)
	if err != nil {
		return serviceError(c, err)
	}

	response := fiber.Map{
		"success": true,
		"request": request.ToDto(),
	}
	if warning != "" {
		response["warning"] = warning
	}
	return c.Status(fiber.StatusCreated).JSON(response)
}

// GetSkillRequests returns requests addressed to the authenticated user.
func (ctrl *SkillExchangeController) GetSkillRequests(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	requests, err := ctrl.requests.ListIncoming(user.ID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"requests": requests,
	})
}

// DeleteUserSkill removes one of the authenticated user's declarations.
func (ctrl *SkillExchangeController) DeleteUserSkill(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	declarationID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid skill ID format",
		})
	}

	if err := ctrl.registry.Remove(uint(declarationID), user.ID); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Skill deleted",
	})
}
