package api

import (
	"strings"

	"choreboard/internal/models"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListTasks(c *fiber.Ctx) error {
	skip, limit := listRange(c)
	tasks, err := handler.repositories.Tasks.List(skip, limit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list tasks")
	}
	return c.JSON(tasks)
}

func (handler *Handler) ListTasksByLocation(c *fiber.Ctx) error {
	locationID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid location id")
	}

	tasks, err := handler.repositories.Tasks.ListByLocation(locationID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list tasks")
	}
	return c.JSON(tasks)
}

func (handler *Handler) GetTask(c *fiber.Ctx) error {
	taskID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid task id")
	}

	task, err := handler.repositories.Tasks.FindByID(taskID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "task not found")
	}
	return c.JSON(task)
}

func (handler *Handler) CreateTask(c *fiber.Ctx) error {
	payload := taskCreatePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(payload.Name) == "" {
		return apiError(c, fiber.StatusUnprocessableEntity, "name is required")
	}

	task := models.Task{
		Name:        payload.Name,
		Description: payload.Description,
		LocationID:  payload.LocationID,
	}
	if err := handler.repositories.Tasks.Create(&task); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create task")
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

func (handler *Handler) UpdateTask(c *fiber.Ctx) error {
	taskID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid task id")
	}
	if _, err := handler.repositories.Tasks.FindByID(taskID); err != nil {
		return apiError(c, fiber.StatusNotFound, "task not found")
	}

	payload := taskUpdatePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	updates := map[string]any{}
	if payload.Name != nil {
		updates["name"] = *payload.Name
	}
	if payload.Description != nil {
		updates["description"] = *payload.Description
	}
	if payload.LocationID != nil {
		updates["location_id"] = *payload.LocationID
	}
	if len(updates) > 0 {
		if err := handler.repositories.Tasks.UpdateByID(taskID, updates); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to update task")
		}
	}

	task, err := handler.repositories.Tasks.FindByID(taskID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load task")
	}
	return c.JSON(task)
}

func (handler *Handler) DeleteTask(c *fiber.Ctx) error {
	taskID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid task id")
	}

	task, err := handler.repositories.Tasks.FindByID(taskID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "task not found")
	}
	if err := handler.repositories.Tasks.Delete(&task); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete task")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
