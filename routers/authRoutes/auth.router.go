package authRoutes

import (
	authController "entropy/controllers/auth"
	"entropy/service"
	authValidator "entropy/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, identity *service.Identity) {
	controller := authController.New(identity)

	app.Post("/signup", authValidator.Signup(), controller.Signup)
	app.Post("/login", authValidator.Login(), controller.Login)
}
