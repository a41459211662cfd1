package api

import (
	"strings"

	"choreboard/internal/models"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListEmailAssignments(c *fiber.Ctx) error {
	skip, limit := listRange(c)
	assignments, err := handler.repositories.EmailAssignments.List(skip, limit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list email assignments")
	}
	return c.JSON(assignments)
}

func (handler *Handler) GetEmailAssignment(c *fiber.Ctx) error {
	assignmentID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid assignment id")
	}

	assignment, err := handler.repositories.EmailAssignments.FindByID(assignmentID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "email assignment not found")
	}
	return c.JSON(assignment)
}

func (handler *Handler) ListEmailAssignmentsByEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	assignments, err := handler.repositories.EmailAssignments.ListByEmail(email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list email assignments")
	}
	return c.JSON(assignments)
}

func (handler *Handler) ListPendingEmailAssignmentsByEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	assignments, err := handler.repositories.EmailAssignments.ListPendingByEmail(email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list email assignments")
	}
	return c.JSON(assignments)
}

// ListDetailedEmailAssignmentsByEmail joins each assignment with the
// task it points at, saving clients a lookup per row.
func (handler *Handler) ListDetailedEmailAssignmentsByEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	assignments, err := handler.repositories.EmailAssignments.ListWithTaskByEmail(email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list email assignments")
	}
	return c.JSON(assignments)
}

func (handler *Handler) CreateEmailAssignment(c *fiber.Ctx) error {
	payload := emailAssignmentCreatePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if payload.TaskID == 0 || strings.TrimSpace(payload.Email) == "" {
		return apiError(c, fiber.StatusUnprocessableEntity, "task_id and email are required")
	}
	date, ok := handler.parseDateField(payload.Date)
	if !ok {
		return apiError(c, fiber.StatusUnprocessableEntity, "invalid date")
	}

	assignment := models.EmailAssignment{
		TaskID: payload.TaskID,
		Email:  payload.Email,
		Date:   date,
		Period: payload.Period,
	}
	if err := handler.repositories.EmailAssignments.Create(&assignment); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create email assignment")
	}
	return c.Status(fiber.StatusCreated).JSON(assignment)
}

func (handler *Handler) UpdateEmailAssignment(c *fiber.Ctx) error {
	assignmentID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid assignment id")
	}
	if _, err := handler.repositories.EmailAssignments.FindByID(assignmentID); err != nil {
		return apiError(c, fiber.StatusNotFound, "email assignment not found")
	}

	payload := emailAssignmentUpdatePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	updates := map[string]any{}
	if payload.TaskID != nil {
		updates["task_id"] = *payload.TaskID
	}
	if payload.Email != nil {
		updates["email"] = *payload.Email
	}
	if payload.Date != nil {
		date, ok := handler.parseDateField(payload.Date)
		if !ok {
			return apiError(c, fiber.StatusUnprocessableEntity, "invalid date")
		}
		updates["date"] = date
	}
	if payload.Period != nil {
		updates["period"] = *payload.Period
	}
	if payload.Done != nil {
		updates["done"] = *payload.Done
	}
	if len(updates) > 0 {
		if err := handler.repositories.EmailAssignments.UpdateByID(assignmentID, updates); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to update email assignment")
		}
	}

	assignment, err := handler.repositories.EmailAssignments.FindByID(assignmentID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load email assignment")
	}
	return c.JSON(assignment)
}

func (handler *Handler) CompleteEmailAssignment(c *fiber.Ctx) error {
	assignmentID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid assignment id")
	}
	if _, err := handler.repositories.EmailAssignments.FindByID(assignmentID); err != nil {
		return apiError(c, fiber.StatusNotFound, "email assignment not found")
	}

	if err := handler.repositories.EmailAssignments.MarkDone(assignmentID, handler.dailyService.Timestamp()); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to complete email assignment")
	}

	assignment, err := handler.repositories.EmailAssignments.FindByID(assignmentID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load email assignment")
	}
	return c.JSON(assignment)
}

func (handler *Handler) DeleteEmailAssignment(c *fiber.Ctx) error {
	assignmentID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid assignment id")
	}

	assignment, err := handler.repositories.EmailAssignments.FindByID(assignmentID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "email assignment not found")
	}
	if err := handler.repositories.EmailAssignments.Delete(&assignment); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete email assignment")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
