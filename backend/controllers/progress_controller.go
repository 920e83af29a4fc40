package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"quicklearn/backend/config"
	"quicklearn/backend/services"
	"quicklearn/backend/utils"
	"quicklearn/backend/validators"
)

type ProgressController struct {
	Progress *services.ProgressService
	Cfg      *config.Config
}

func NewProgressController(progress *services.ProgressService, cfg *config.Config) *ProgressController {
	return &ProgressController{Progress: progress, Cfg: cfg}
}

// RecordCompletion godoc
// @Summary Mark a lesson as completed for the authenticated user
// @Tags progress
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Router /progress [post]
func (pc *ProgressController) RecordCompletion(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var input validators.RecordProgressRequest
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if fields := validators.Validate(&input); fields != nil {
		return utils.ValidationError(c, fields)
	}

	if err := pc.Progress.RecordCompletion(userID, input.LessonID, time.Now().UTC()); err != nil {
		return serviceError(c, err)
	}
	return utils.NoContent(c)
}

// GetProgress godoc
// @Summary List the authenticated user's completed lessons
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Router /progress [get]
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	rows, err := pc.Progress.GetProgressForUser(userID)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, rows)
}
