package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"quicklearn/backend/services"
	"quicklearn/backend/utils"
)

// serviceError maps the services error taxonomy onto HTTP statuses.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrCourseNotFound),
		errors.Is(err, services.ErrRoadmapNotFound),
		errors.Is(err, services.ErrLessonNotFound),
		errors.Is(err, services.ErrCategoryNotFound):
		return utils.Error(c, fiber.StatusNotFound, err)
	case errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, services.ErrInvalidRoadmap),
		errors.Is(err, services.ErrDuplicateName),
		errors.Is(err, services.ErrCategoryInUse):
		return utils.Error(c, fiber.StatusBadRequest, err)
	default:
		return utils.Error(c, fiber.StatusInternalServerError, err)
	}
}
