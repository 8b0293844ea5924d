package authController

import (
	"log"

	"entropy/middleware"
	"entropy/service"
	"entropy/utils"
	authValidator "entropy/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// Controller binds the identity service to the HTTP surface.
type Controller struct {
	identity *service.Identity
}

func New(identity *service.Identity) *Controller {
	return &Controller{identity: identity}
}

func (ct *Controller) Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*authValidator.SignupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := ct.identity.Register(c.Context(), reqData.Name, reqData.Email, reqData.Age, reqData.Password)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	token, err := middleware.GenerateJWT(user.ID)
	if err != nil {
		log.Printf("Error generating token for user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	// Best effort; signup never fails on email trouble
	go utils.SendWelcomeEmail(user.Email, user.Name)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User created successfully",
		"data":    user,
		"token":   token,
	})
}

func (ct *Controller) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := ct.identity.Authenticate(c.Context(), reqData.Email, reqData.Password)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	token, err := middleware.GenerateJWT(user.ID)
	if err != nil {
		log.Printf("Error generating token for user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"data":    user,
		"token":   token,
	})
}
