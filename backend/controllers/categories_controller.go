package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"quicklearn/backend/config"
	"quicklearn/backend/services"
	"quicklearn/backend/utils"
	"quicklearn/backend/validators"
)

type CategoriesController struct {
	Catalog *services.CatalogService
	Cfg     *config.Config
}

func NewCategoriesController(catalog *services.CatalogService, cfg *config.Config) *CategoriesController {
	return &CategoriesController{Catalog: catalog, Cfg: cfg}
}

func (cc *CategoriesController) ListCourseCategories(c *fiber.Ctx) error {
	categories, err := cc.Catalog.ListCourseCategories()
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, categories)
}

func (cc *CategoriesController) ListRoadmapCategories(c *fiber.Ctx) error {
	categories, err := cc.Catalog.ListRoadmapCategories()
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, categories)
}

func (cc *CategoriesController) CreateCourseCategory(c *fiber.Ctx) error {
	var input validators.CreateCategoryRequest
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if fields := validators.Validate(&input); fields != nil {
		return utils.ValidationError(c, fields)
	}

	category, err := cc.Catalog.CreateCourseCategory(input.Name)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Created(c, category)
}

func (cc *CategoriesController) CreateRoadmapCategory(c *fiber.Ctx) error {
	var input validators.CreateCategoryRequest
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if fields := validators.Validate(&input); fields != nil {
		return utils.ValidationError(c, fields)
	}

	category, err := cc.Catalog.CreateRoadmapCategory(input.Name)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Created(c, category)
}

func (cc *CategoriesController) DeleteCourseCategory(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid category ID",
		})
	}

	if err := cc.Catalog.DeleteCourseCategory(uint(id)); err != nil {
		return serviceError(c, err)
	}
	return utils.NoContent(c)
}

func (cc *CategoriesController) DeleteRoadmapCategory(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid category ID",
		})
	}

	if err := cc.Catalog.DeleteRoadmapCategory(uint(id)); err != nil {
		return serviceError(c, err)
	}
	return utils.NoContent(c)
}
