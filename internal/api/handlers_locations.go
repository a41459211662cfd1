package api

import (
	"strings"

	"choreboard/internal/models"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListLocations(c *fiber.Ctx) error {
	skip, limit := listRange(c)
	locations, err := handler.repositories.Locations.List(skip, limit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list locations")
	}
	return c.JSON(locations)
}

func (handler *Handler) GetLocation(c *fiber.Ctx) error {
	locationID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid location id")
	}

	location, err := handler.repositories.Locations.FindByID(locationID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "location not found")
	}
	return c.JSON(location)
}

func (handler *Handler) CreateLocation(c *fiber.Ctx) error {
	payload := locationCreatePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(payload.Description) == "" {
		return apiError(c, fiber.StatusUnprocessableEntity, "description is required")
	}

	location := models.Location{Description: payload.Description}
	if err := handler.repositories.Locations.Create(&location); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create location")
	}
	return c.Status(fiber.StatusCreated).JSON(location)
}

func (handler *Handler) UpdateLocation(c *fiber.Ctx) error {
	locationID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid location id")
	}
	if _, err := handler.repositories.Locations.FindByID(locationID); err != nil {
		return apiError(c, fiber.StatusNotFound, "location not found")
	}

	payload := locationUpdatePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	updates := map[string]any{}
	if payload.Description != nil {
		updates["description"] = *payload.Description
	}
	if len(updates) > 0 {
		if err := handler.repositories.Locations.UpdateByID(locationID, updates); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to update location")
		}
	}

	location, err := handler.repositories.Locations.FindByID(locationID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load location")
	}
	return c.JSON(location)
}

func (handler *Handler) DeleteLocation(c *fiber.Ctx) error {
	locationID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid location id")
	}

	location, err := handler.repositories.Locations.FindByID(locationID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "location not found")
	}
	if err := handler.repositories.Locations.Delete(&location); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete location")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
