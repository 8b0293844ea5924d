package moduleValidator

import (
	"strconv"
	"strings"

	"entropy/middleware"

	"github.com/gofiber/fiber/v2"
)

type ModuleActionRequest struct {
	ModuleID uint `json:"moduleId"`
}

// ModuleAction validates the {moduleId} body shared by enroll and complete.
func ModuleAction() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ModuleActionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.ModuleID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module ID is required!", nil)
		}

		c.Locals("moduleID", reqData.ModuleID)
		return c.Next()
	}
}

// ModuleID validates the :id path parameter on catalog lookups.
func ModuleID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleIDStr := strings.TrimSpace(c.Params("id"))
		if moduleIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module ID is required!", nil)
		}

		moduleID, err := strconv.Atoi(moduleIDStr)
		if err != nil || moduleID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		c.Locals("moduleID", uint(moduleID))
		return c.Next()
	}
}
