package api

import (
	"choreboard/internal/models"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListTaskAssignments(c *fiber.Ctx) error {
	skip, limit := listRange(c)
	assignments, err := handler.repositories.TaskAssignments.List(skip, limit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list assignments")
	}
	return c.JSON(assignments)
}

func (handler *Handler) GetTaskAssignment(c *fiber.Ctx) error {
	assignmentID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid assignment id")
	}

	assignment, err := handler.repositories.TaskAssignments.FindByID(assignmentID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "assignment not found")
	}
	return c.JSON(assignment)
}

func (handler *Handler) ListTaskAssignmentsByUser(c *fiber.Ctx) error {
	userID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	assignments, err := handler.repositories.TaskAssignments.ListByUser(userID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list assignments")
	}
	return c.JSON(assignments)
}

func (handler *Handler) ListTaskAssignmentsByTask(c *fiber.Ctx) error {
	taskID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid task id")
	}

	assignments, err := handler.repositories.TaskAssignments.ListByTask(taskID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list assignments")
	}
	return c.JSON(assignments)
}

func (handler *Handler) ListPendingTaskAssignmentsByUser(c *fiber.Ctx) error {
	userID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	assignments, err := handler.repositories.TaskAssignments.ListPendingByUser(userID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list assignments")
	}
	return c.JSON(assignments)
}

func (handler *Handler) CreateTaskAssignment(c *fiber.Ctx) error {
	payload := taskAssignmentCreatePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if payload.UserID == 0 || payload.TaskID == 0 {
		return apiError(c, fiber.StatusUnprocessableEntity, "user_id and task_id are required")
	}
	date, ok := handler.parseDateField(payload.Date)
	if !ok {
		return apiError(c, fiber.StatusUnprocessableEntity, "invalid date")
	}

	assignment := models.TaskAssignment{
		UserID: payload.UserID,
		TaskID: payload.TaskID,
		Date:   date,
		Period: payload.Period,
	}
	if err := handler.repositories.TaskAssignments.Create(&assignment); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create assignment")
	}
	return c.Status(fiber.StatusCreated).JSON(assignment)
}

func (handler *Handler) UpdateTaskAssignment(c *fiber.Ctx) error {
	assignmentID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid assignment id")
	}
	if _, err := handler.repositories.TaskAssignments.FindByID(assignmentID); err != nil {
		return apiError(c, fiber.StatusNotFound, "assignment not found")
	}

	payload := taskAssignmentUpdatePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	updates := map[string]any{}
	if payload.UserID != nil {
		updates["user_id"] = *payload.UserID
	}
	if payload.TaskID != nil {
		updates["task_id"] = *payload.TaskID
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
		if err := handler.repositories.TaskAssignments.UpdateByID(assignmentID, updates); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to update assignment")
		}
	}

	assignment, err := handler.repositories.TaskAssignments.FindByID(assignmentID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load assignment")
	}
	return c.JSON(assignment)
}

// CompleteTaskAssignment flips the legacy whole-assignment done flag.
// The per-day completion log has its own endpoints under /daily.
func (handler *Handler) CompleteTaskAssignment(c *fiber.Ctx) error {
	assignmentID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid assignment id")
	}
	if _, err := handler.repositories.TaskAssignments.FindByID(assignmentID); err != nil {
		return apiError(c, fiber.StatusNotFound, "assignment not found")
	}

	if err := handler.repositories.TaskAssignments.MarkDone(assignmentID, handler.dailyService.Timestamp()); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to complete assignment")
	}

	assignment, err := handler.repositories.TaskAssignments.FindByID(assignmentID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load assignment")
	}
	return c.JSON(assignment)
}

func (handler *Handler) DeleteTaskAssignment(c *fiber.Ctx) error {
	assignmentID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid assignment id")
	}

	assignment, err := handler.repositories.TaskAssignments.FindByID(assignmentID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "assignment not found")
	}
	if err := handler.repositories.TaskAssignments.Delete(&assignment); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete assignment")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
