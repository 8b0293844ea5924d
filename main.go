package main

import (
	"log"
	"time"

	"entropy/config"
	"entropy/database"
	authRoutes "entropy/routers/authRoutes"
	moduleRoutes "entropy/routers/moduleRoutes"
	"entropy/service"
	"entropy/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	st := database.ConnectDb()

	identity := service.NewIdentity(st, config.AppConfig.SaltRound)
	enrollment := service.NewEnrollment(st)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "OK",
			"message":   "Entropy Productions API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Serve the static frontend
	app.Static("/", config.AppConfig.FrontendDir)

	authRoutes.SetupAuthRoutes(app, identity)
	moduleRoutes.SetupModuleRoutes(app, enrollment)

	utils.InitializeReconcileScheduler(st)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
