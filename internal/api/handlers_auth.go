package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Login and LoginExternal always answer 200: a rejected credential is a
// business outcome carried in the success/message fields, not a
// protocol error.

func (handler *Handler) Login(c *fiber.Ctx) error {
	payload := loginPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(payload.Login) == "" {
		return apiError(c, fiber.StatusUnprocessableEntity, "login is required")
	}

	result, err := handler.authService.Login(payload.Login, payload.Password)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "login failed")
	}
	return c.JSON(result)
}

func (handler *Handler) LoginExternal(c *fiber.Ctx) error {
	payload := externalLoginPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(payload.Email) == "" {
		return apiError(c, fiber.StatusUnprocessableEntity, "email is required")
	}

	result, err := handler.authService.LoginExternal(payload.Email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "login failed")
	}
	return c.JSON(result)
}
