package api

import (
	"strings"

	"choreboard/internal/models"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListCategories(c *fiber.Ctx) error {
	skip, limit := listRange(c)
	categories, err := handler.repositories.Categories.List(skip, limit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list categories")
	}
	return c.JSON(categories)
}

func (handler *Handler) GetCategory(c *fiber.Ctx) error {
	categoryID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid category id")
	}

	category, err := handler.repositories.Categories.FindByID(categoryID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "category not found")
	}
	return c.JSON(category)
}

func (handler *Handler) CreateCategory(c *fiber.Ctx) error {
	payload := categoryCreatePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(payload.Name) == "" {
		return apiError(c, fiber.StatusUnprocessableEntity, "name is required")
	}

	category := models.Category{Name: payload.Name}
	if err := handler.repositories.Categories.Create(&category); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create category")
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

func (handler *Handler) UpdateCategory(c *fiber.Ctx) error {
	categoryID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid category id")
	}
	if _, err := handler.repositories.Categories.FindByID(categoryID); err != nil {
		return apiError(c, fiber.StatusNotFound, "category not found")
	}

	payload := categoryUpdatePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	updates := map[string]any{}
	if payload.Name != nil {
		updates["name"] = *payload.Name
	}
	if len(updates) > 0 {
		if err := handler.repositories.Categories.UpdateByID(categoryID, updates); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to update category")
		}
	}

	category, err := handler.repositories.Categories.FindByID(categoryID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load category")
	}
	return c.JSON(category)
}

func (handler *Handler) DeleteCategory(c *fiber.Ctx) error {
	categoryID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid category id")
	}

	category, err := handler.repositories.Categories.FindByID(categoryID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "category not found")
	}
	if err := handler.repositories.Categories.Delete(&category); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete category")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
