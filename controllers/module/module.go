package moduleController

import (
	"entropy/middleware"
	"entropy/service"

	"github.com/gofiber/fiber/v2"
)

// Controller binds the enrollment service to the HTTP surface.
type Controller struct {
	enrollment *service.Enrollment
}

func New(enrollment *service.Enrollment) *Controller {
	return &Controller{enrollment: enrollment}
}

// Catalog handles GET /api/entropy
func (ct *Controller) Catalog(c *fiber.Ctx) error {
	grouped, total, err := ct.enrollment.Catalog(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":      true,
		"data":         grouped,
		"totalModules": total,
	})
}

// GetModule handles GET /api/entropy/module/:id
func (ct *Controller) GetModule(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(uint)

	module, err := ct.enrollment.ModuleByID(c.Context(), moduleID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    module,
	})
}

// LearningState handles GET /modules
func (ct *Controller) LearningState(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	state, err := ct.enrollment.State(c.Context(), userID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"user": fiber.Map{
				"id":    state.User.ID,
				"name":  state.User.Name,
				"email": state.User.Email,
				"age":   state.User.Age,
			},
			"enrolledModules":      state.Enrolled,
			"completedModules":     state.Completed,
			"progress":             state.Progress,
			"enrolledModulesData":  state.EnrolledModules,
			"completedModulesData": state.CompletedModules,
			"allModules":           state.AllModules,
			"recommendedModules":   state.Recommended,
		},
	})
}

// Enroll handles POST /modules/enroll
func (ct *Controller) Enroll(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	moduleID := c.Locals("moduleID").(uint)

	module, enrolled, err := ct.enrollment.Enroll(c.Context(), userID, moduleID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Successfully enrolled in module",
		"data": fiber.Map{
			"module":          module,
			"enrolledModules": enrolled,
		},
	})
}

// Complete handles POST /modules/complete
func (ct *Controller) Complete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	moduleID := c.Locals("moduleID").(uint)

	module, completed, progress, err := ct.enrollment.Complete(c.Context(), userID, moduleID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Module marked as completed",
		"data": fiber.Map{
			"module":           module,
			"completedModules": completed,
			"progress":         progress,
		},
	})
}
