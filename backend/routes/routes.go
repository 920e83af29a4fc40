package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quicklearn/backend/config"
	"quicklearn/backend/controllers"
	"quicklearn/backend/middleware"
	"quicklearn/backend/services"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	catalog := services.NewCatalogService(db)
	progress := services.NewProgressService(db)
	query := services.NewQueryService(catalog, progress)

	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware(db, cfg)

	app.Get("/api/user/profile", authMiddleware, authController.GetProfile)

	// Roadmap routes
	roadmapsController := controllers.NewRoadmapsController(catalog, query, cfg)
	roadmaps := app.Group("/api/roadmaps", authMiddleware)
	roadmaps.Get("/", roadmapsController.ListRoadmaps)
	roadmaps.Get("/:id", roadmapsController.GetRoadmapDetails)

	// Course routes
	coursesController := controllers.NewCoursesController(catalog, query, cfg)
	courses := app.Group("/api/courses", authMiddleware)
	courses.Get("/", coursesController.ListCourses)
	courses.Get("/:id", coursesController.GetCourseDetails)

	// Progress routes
	progressController := controllers.NewProgressController(progress, cfg)
	app.Post("/api/progress", authMiddleware, progressController.RecordCompletion)
	app.Get("/api/progress", authMiddleware, progressController.GetProgress)

	// Admin routes for roadmaps
	adminRoadmaps := app.Group("/api/admin/roadmaps", authMiddleware, adminMiddleware)
	adminRoadmaps.Post("/", roadmapsController.CreateRoadmap)
	adminRoadmaps.Patch("/:id", roadmapsController.UpdateRoadmap)
	adminRoadmaps.Post("/:id/courses/:courseId", roadmapsController.AssignCourse)
	adminRoadmaps.Delete("/:id/courses/:courseId", roadmapsController.RemoveCourse)

	// Admin routes for courses
	adminCourses := app.Group("/api/admin/courses", authMiddleware, adminMiddleware)
	adminCourses.Post("/", coursesController.CreateCourse)
	adminCourses.Patch("/:id", coursesController.UpdateCourse)
	adminCourses.Post("/:id/lessons", coursesController.AddLesson)
	adminCourses.Patch("/:id/lessons/:lessonId", coursesController.UpdateLesson)

	// Admin routes for categories
	categoriesController := controllers.NewCategoriesController(catalog, cfg)
	adminCategories := app.Group("/api/admin/categories", authMiddleware, adminMiddleware)
	adminCategories.Get("/courses", categoriesController.ListCourseCategories)
	adminCategories.Post("/courses", categoriesController.CreateCourseCategory)
	adminCategories.Delete("/courses/:id", categoriesController.DeleteCourseCategory)
	adminCategories.Get("/roadmaps", categoriesController.ListRoadmapCategories)
	adminCategories.Post("/roadmaps", categoriesController.CreateRoadmapCategory)
	adminCategories.Delete("/roadmaps/:id", categoriesController.DeleteRoadmapCategory)
}
