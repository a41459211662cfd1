package api

import (
	"errors"

	"choreboard/internal/services"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListDailyTasksForUser(c *fiber.Ctx) error {
	userID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	tasks, err := handler.dailyService.ListTodayForUser(userID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list daily tasks")
	}
	return c.JSON(tasks)
}

func (handler *Handler) ListDailyTasksForEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	tasks, err := handler.dailyService.ListTodayForEmail(email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list daily tasks")
	}
	return c.JSON(tasks)
}

func (handler *Handler) CompleteDailyTaskForUser(c *fiber.Ctx) error {
	assignmentID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid assignment id")
	}

	completion, err := handler.dailyService.CompleteTodayForUser(assignmentID)
	if errors.Is(err, services.ErrAssignmentNotFound) {
		return apiError(c, fiber.StatusNotFound, "assignment not found")
	}
	if errors.Is(err, services.ErrAlreadyCompletedToday) {
		return apiError(c, fiber.StatusBadRequest, "task already completed today")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to record completion")
	}
	return c.Status(fiber.StatusCreated).JSON(completion)
}

func (handler *Handler) CompleteDailyTaskForEmail(c *fiber.Ctx) error {
	assignmentID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid assignment id")
	}

	completion, err := handler.dailyService.CompleteTodayForEmail(assignmentID)
	if errors.Is(err, services.ErrAssignmentNotFound) {
		return apiError(c, fiber.StatusNotFound, "email assignment not found")
	}
	if errors.Is(err, services.ErrAlreadyCompletedToday) {
		return apiError(c, fiber.StatusBadRequest, "task already completed today")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to record completion")
	}
	return c.Status(fiber.StatusCreated).JSON(completion)
}

func (handler *Handler) UndoDailyTaskForUser(c *fiber.Ctx) error {
	assignmentID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid assignment id")
	}

	err = handler.dailyService.UndoTodayForUser(assignmentID)
	if errors.Is(err, services.ErrCompletionNotFound) {
		return apiError(c, fiber.StatusNotFound, "no completion found for today")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to undo completion")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) UndoDailyTaskForEmail(c *fiber.Ctx) error {
	assignmentID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid assignment id")
	}

	err = handler.dailyService.UndoTodayForEmail(assignmentID)
	if errors.Is(err, services.ErrCompletionNotFound) {
		return apiError(c, fiber.StatusNotFound, "no completion found for today")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to undo completion")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) DailyHistoryForUser(c *fiber.Ctx) error {
	userID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}
	from, err := handler.dateQuery(c, "date_from")
	if err != nil {
		return apiError(c, fiber.StatusUnprocessableEntity, "invalid date_from")
	}
	to, err := handler.dateQuery(c, "date_to")
	if err != nil {
		return apiError(c, fiber.StatusUnprocessableEntity, "invalid date_to")
	}

	entries, err := handler.dailyService.HistoryForUser(userID, from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load history")
	}
	return c.JSON(entries)
}

func (handler *Handler) DailyHistoryForEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	from, err := handler.dateQuery(c, "date_from")
	if err != nil {
		return apiError(c, fiber.StatusUnprocessableEntity, "invalid date_from")
	}
	to, err := handler.dateQuery(c, "date_to")
	if err != nil {
		return apiError(c, fiber.StatusUnprocessableEntity, "invalid date_to")
	}

	entries, err := handler.dailyService.HistoryForEmail(email, from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load history")
	}
	return c.JSON(entries)
}
