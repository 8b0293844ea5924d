package moduleRoutes

import (
	moduleController "entropy/controllers/module"
	"entropy/middleware"
	"entropy/service"
	moduleValidator "entropy/validators/module"

	"github.com/gofiber/fiber/v2"
)

func SetupModuleRoutes(app *fiber.App, enrollment *service.Enrollment) {
	controller := moduleController.New(enrollment)

	// Public catalog
	app.Get("/api/entropy", controller.Catalog)
	app.Get("/api/entropy/module/:id", moduleValidator.ModuleID(), controller.GetModule)

	// Per-user learning state
	moduleGroup := app.Group("/modules", middleware.JWTMiddleware)
	moduleGroup.Get("/", controller.LearningState)
	moduleGroup.Post("/enroll", moduleValidator.ModuleAction(), controller.Enroll)
	moduleGroup.Post("/complete", moduleValidator.ModuleAction(), controller.Complete)
}
