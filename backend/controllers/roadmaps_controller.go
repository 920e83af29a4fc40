package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"quicklearn/backend/config"
	"quicklearn/backend/services"
	"quicklearn/backend/utils"
	"quicklearn/backend/validators"
)

type RoadmapsController struct {
	Catalog *services.CatalogService
	Query   *services.QueryService
	Cfg     *config.Config
}

func NewRoadmapsController(catalog *services.CatalogService, query *services.QueryService, cfg *config.Config) *RoadmapsController {
	return &RoadmapsController{Catalog: catalog, Query: query, Cfg: cfg}
}

func (rc *RoadmapsController) ListRoadmaps(c *fiber.Ctx) error {
	roadmaps, err := rc.Catalog.ListRoadmaps()
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, roadmaps)
}

// GetRoadmapDetails returns the roadmap with its courses, lessons and the
// requester's completion state over them.
func (rc *RoadmapsController) GetRoadmapDetails(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, rc.Cfg)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	roadmapID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid roadmap ID",
		})
	}

	view, err := rc.Query.GetRoadmapWithProgress(userID, uint(roadmapID))
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, view)
}

func (rc *RoadmapsController) CreateRoadmap(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, rc.Cfg)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var input validators.CreateRoadmapRequest
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if fields := validators.Validate(&input); fields != nil {
		return utils.ValidationError(c, fields)
	}

	roadmap, err := rc.Catalog.CreateRoadmap(userID, services.NewRoadmap{
		Name:        input.Name,
		Description: input.Description,
		CategoryID:  input.CategoryID,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Created(c, roadmap)
}

func (rc *RoadmapsController) UpdateRoadmap(c *fiber.Ctx) error {
	roadmapID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid roadmap ID",
		})
	}

	var input validators.UpdateRoadmapRequest
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if fields := validators.Validate(&input); fields != nil {
		return utils.ValidationError(c, fields)
	}

	err = rc.Catalog.UpdateRoadmap(uint(roadmapID), services.RoadmapPatch{
		Name:        input.Name,
		Description: input.Description,
		CategoryID:  input.CategoryID,
		Achieved:    input.Achieved,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return utils.NoContent(c)
}

func (rc *RoadmapsController) AssignCourse(c *fiber.Ctx) error {
	roadmapID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid roadmap ID",
		})
	}

	courseID, err := strconv.Atoi(c.Params("courseId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid course ID",
		})
	}

	if err := rc.Catalog.AssignCourseToRoadmap(uint(roadmapID), uint(courseID)); err != nil {
		return serviceError(c, err)
	}
	return utils.NoContent(c)
}

func (rc *RoadmapsController) RemoveCourse(c *fiber.Ctx) error {
	roadmapID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid roadmap ID",
		})
	}

	courseID, err := strconv.Atoi(c.Params("courseId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid course ID",
		})
	}

	if err := rc.Catalog.RemoveCourseFromRoadmap(uint(roadmapID), uint(courseID)); err != nil {
		return serviceError(c, err)
	}
	return utils.NoContent(c)
}
