package api

import (
	"errors"
	"strings"

	"choreboard/internal/services"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListUsers(c *fiber.Ctx) error {
	skip, limit := listRange(c)
	users, err := handler.repositories.Users.List(skip, limit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list users")
	}
	return c.JSON(users)
}

func (handler *Handler) GetUser(c *fiber.Ctx) error {
	userID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	user, err := handler.repositories.Users.FindByID(userID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "user not found")
	}
	return c.JSON(user)
}

func (handler *Handler) CreateUser(c *fiber.Ctx) error {
	payload := userCreatePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(payload.Name) == "" || strings.TrimSpace(payload.Login) == "" || payload.Password == "" {
		return apiError(c, fiber.StatusUnprocessableEntity, "name, login and password are required")
	}

	user, err := handler.authService.CreateSimple(payload.Name, payload.Login, payload.Password)
	if errors.Is(err, services.ErrLoginTaken) {
		return apiError(c, fiber.StatusBadRequest, "login already registered")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create user")
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// CreateExternalUser registers an email-backed account with no password.
func (handler *Handler) CreateExternalUser(c *fiber.Ctx) error {
	payload := externalUserCreatePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(payload.Name) == "" || strings.TrimSpace(payload.Email) == "" {
		return apiError(c, fiber.StatusUnprocessableEntity, "name and email are required")
	}

	user, err := handler.authService.CreateExternal(payload.Name, payload.Email)
	if errors.Is(err, services.ErrEmailTaken) {
		return apiError(c, fiber.StatusBadRequest, "email already registered")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create user")
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (handler *Handler) UpdateUser(c *fiber.Ctx) error {
	userID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}
	if _, err := handler.repositories.Users.FindByID(userID); err != nil {
		return apiError(c, fiber.StatusNotFound, "user not found")
	}

	payload := userUpdatePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	updates := map[string]any{}
	if payload.Name != nil {
		updates["name"] = *payload.Name
	}
	if payload.Login != nil {
		updates["login"] = *payload.Login
	}
	if payload.Email != nil {
		updates["email"] = *payload.Email
	}
	if payload.Password != nil && *payload.Password != "" {
		updates["password_hash"] = services.HashPassword(*payload.Password)
	}
	if len(updates) > 0 {
		if err := handler.repositories.Users.UpdateByID(userID, updates); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to update user")
		}
	}

	user, err := handler.repositories.Users.FindByID(userID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load user")
	}
	return c.JSON(user)
}

func (handler *Handler) DeleteUser(c *fiber.Ctx) error {
	userID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	user, err := handler.repositories.Users.FindByID(userID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "user not found")
	}
	if err := handler.repositories.Users.Delete(&user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete user")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
