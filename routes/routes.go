package routes

import (
	"ossutracker/controllers"
	"ossutracker/models"
	"ossutracker/repository"
	"ossutracker/validators"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, store repository.Store, catalog []models.Course, curricula []models.CurriculumInfo) {
	api := app.Group("/api")

	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "OSSU Course Tracker API",
			"version": "1.0.0",
		})
	})

	// Courses routes
	coursesController := controllers.NewCoursesController(store)
	api.Get("/courses", coursesController.ListCourses)
	api.Get("/courses/:id", coursesController.GetCourse)
	api.Put("/courses/:id/progress", validators.UpdateProgress(), coursesController.UpdateProgress)
	api.Post("/courses/:id/auto-update", validators.AutoUpdate(), coursesController.AutoUpdateProgress)

	// Sync routes
	syncController := controllers.NewSyncController(store, catalog)
	api.Post("/sync", syncController.SyncCourses)

	// Stats routes
	statsController := controllers.NewStatsController(store)
	api.Get("/stats", statsController.GetStats)

	// Curricula routes
	curriculaController := controllers.NewCurriculaController(curricula)
	api.Get("/curricula", curriculaController.GetCurricula)
}
