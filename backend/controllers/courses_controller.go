package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"quicklearn/backend/config"
	"quicklearn/backend/services"
	"quicklearn/backend/utils"
	"quicklearn/backend/validators"
)

type CoursesController struct {
	Catalog *services.CatalogService
	Query   *services.QueryService
	Cfg     *config.Config
}

func NewCoursesController(catalog *services.CatalogService, query *services.QueryService, cfg *config.Config) *CoursesController {
	return &CoursesController{Catalog: catalog, Query: query, Cfg: cfg}
}

func (cc *CoursesController) ListCourses(c *fiber.Ctx) error {
	courses, err := cc.Catalog.ListCourses()
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, courses)
}

// GetCourseDetails returns the course with its lessons and the requester's
// completion state over them.
func (cc *CoursesController) GetCourseDetails(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, cc.Cfg)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid course ID",
		})
	}

	view, err := cc.Query.GetCourseWithProgress(userID, uint(courseID))
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, view)
}

func (cc *CoursesController) CreateCourse(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, cc.Cfg)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var input validators.CreateCourseRequest
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if fields := validators.Validate(&input); fields != nil {
		return utils.ValidationError(c, fields)
	}

	course, err := cc.Catalog.CreateCourse(userID, services.NewCourse{
		Name:        input.Name,
		Description: input.Description,
		CategoryID:  input.CategoryID,
		RoadmapID:   input.RoadmapID,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Created(c, course)
}

func (cc *CoursesController) UpdateCourse(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid course ID",
		})
	}

	var input validators.UpdateCourseRequest
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if fields := validators.Validate(&input); fields != nil {
		return utils.ValidationError(c, fields)
	}

	err = cc.Catalog.UpdateCourse(uint(courseID), services.CoursePatch{
		Name:        input.Name,
		Description: input.Description,
		CategoryID:  input.CategoryID,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return utils.NoContent(c)
}

func (cc *CoursesController) AddLesson(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid course ID",
		})
	}

	var input validators.AddLessonRequest
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if fields := validators.Validate(&input); fields != nil {
		return utils.ValidationError(c, fields)
	}

	lesson, err := cc.Catalog.AddLesson(uint(courseID), input.Name, input.Content)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Created(c, lesson)
}

func (cc *CoursesController) UpdateLesson(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid course ID",
		})
	}

	lessonID, err := strconv.Atoi(c.Params("lessonId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid lesson ID",
		})
	}

	var input validators.UpdateLessonRequest
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if fields := validators.Validate(&input); fields != nil {
		return utils.ValidationError(c, fields)
	}

	err = cc.Catalog.UpdateLesson(uint(courseID), uint(lessonID), services.LessonPatch{
		Name:    input.Name,
		Content: input.Content,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return utils.NoContent(c)
}
