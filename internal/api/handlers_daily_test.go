package api

import (
	"net/http"
	"testing"

	"choreboard/internal/models"

	"github.com/gofiber/fiber/v2"
)

func seedEmailAssignment(t *testing.T, app *fiber.App) models.EmailAssignment {
	t.Helper()

	var task models.Task
	createViaAPI(t, app, "/tasks", map[string]any{"name": "Feed cat", "description": "Twice a day"}, &task)

	var assignment models.EmailAssignment
	createViaAPI(t, app, "/email-assignments", map[string]any{
		"task_id": task.ID,
		"email":   "ann@example.com",
		"period":  "morning",
	}, &assignment)
	return assignment
}

func TestDailyCompleteTwiceSameDay(t *testing.T) {
	app := newTestApp(t)
	assignment := seedEmailAssignment(t, app)
	_ = assignment

	response := doJSON(t, app, http.MethodPost, "/daily/email/1/complete", nil)
	expectStatus(t, response, http.StatusCreated)

	var completion models.DailyCompletion
	decodeBody(t, response, &completion)
	if completion.EmailAssignmentID == nil || *completion.EmailAssignmentID != 1 {
		t.Fatalf("expected completion for assignment 1, got %+v", completion)
	}
	if completion.CompletedAt == "" {
		t.Fatal("expected a completion timestamp")
	}

	response = doJSON(t, app, http.MethodPost, "/daily/email/1/complete", nil)
	expectStatus(t, response, http.StatusBadRequest)
}

func TestDailyCompleteUnknownAssignment(t *testing.T) {
	app := newTestApp(t)

	response := doJSON(t, app, http.MethodPost, "/daily/email/42/complete", nil)
	expectStatus(t, response, http.StatusNotFound)

	response = doJSON(t, app, http.MethodPost, "/daily/user/42/complete", nil)
	expectStatus(t, response, http.StatusNotFound)
}

func TestDailyUndoLifecycle(t *testing.T) {
	app := newTestApp(t)
	seedEmailAssignment(t, app)

	// Nothing logged yet.
	response := doJSON(t, app, http.MethodDelete, "/daily/email/1/undo", nil)
	expectStatus(t, response, http.StatusNotFound)

	response = doJSON(t, app, http.MethodPost, "/daily/email/1/complete", nil)
	expectStatus(t, response, http.StatusCreated)

	response = doJSON(t, app, http.MethodDelete, "/daily/email/1/undo", nil)
	expectStatus(t, response, http.StatusNoContent)

	response = doJSON(t, app, http.MethodDelete, "/daily/email/1/undo", nil)
	expectStatus(t, response, http.StatusNotFound)
}

func TestDailyListAnnotatesCompletion(t *testing.T) {
	app := newTestApp(t)
	seedEmailAssignment(t, app)

	response := doJSON(t, app, http.MethodGet, "/daily/email/ann@example.com", nil)
	expectStatus(t, response, http.StatusOK)

	var tasks []map[string]any
	decodeBody(t, response, &tasks)
	if len(tasks) != 1 {
		t.Fatalf("expected 1 daily task, got %d", len(tasks))
	}
	if tasks[0]["completed_today"] != false {
		t.Fatalf("expected not completed, got %+v", tasks[0])
	}
	if tasks[0]["task_name"] != "Feed cat" {
		t.Fatalf("expected joined task name, got %+v", tasks[0])
	}

	response = doJSON(t, app, http.MethodPost, "/daily/email/1/complete", nil)
	expectStatus(t, response, http.StatusCreated)

	response = doJSON(t, app, http.MethodGet, "/daily/email/ann@example.com", nil)
	expectStatus(t, response, http.StatusOK)
	decodeBody(t, response, &tasks)
	if tasks[0]["completed_today"] != true {
		t.Fatalf("expected completed today, got %+v", tasks[0])
	}
	if tasks[0]["completed_at"] == "" {
		t.Fatal("expected completion timestamp in listing")
	}
}

func TestDailyListForUser(t *testing.T) {
	app := newTestApp(t)

	var user models.User
	createViaAPI(t, app, "/users", map[string]any{"name": "Bob", "login": "bob", "password": "x"}, &user)

	var task models.Task
	createViaAPI(t, app, "/tasks", map[string]any{"name": "Take out trash"}, &task)

	var assignment models.TaskAssignment
	createViaAPI(t, app, "/assignments", map[string]any{"user_id": user.ID, "task_id": task.ID}, &assignment)

	response := doJSON(t, app, http.MethodGet, "/daily/user/1", nil)
	expectStatus(t, response, http.StatusOK)

	var tasks []map[string]any
	decodeBody(t, response, &tasks)
	if len(tasks) != 1 {
		t.Fatalf("expected 1 daily task, got %d", len(tasks))
	}
	if tasks[0]["user_name"] != "Bob" {
		t.Fatalf("expected joined user name, got %+v", tasks[0])
	}

	response = doJSON(t, app, http.MethodPost, "/daily/user/1/complete", nil)
	expectStatus(t, response, http.StatusCreated)

	response = doJSON(t, app, http.MethodGet, "/daily/user/1", nil)
	expectStatus(t, response, http.StatusOK)
	decodeBody(t, response, &tasks)
	if tasks[0]["completed_today"] != true {
		t.Fatalf("expected completed today, got %+v", tasks[0])
	}
}

func TestDailyHistory(t *testing.T) {
	app := newTestApp(t)
	seedEmailAssignment(t, app)

	response := doJSON(t, app, http.MethodPost, "/daily/email/1/complete", nil)
	expectStatus(t, response, http.StatusCreated)

	response = doJSON(t, app, http.MethodGet, "/daily/email/ann@example.com/history", nil)
	expectStatus(t, response, http.StatusOK)

	var entries []map[string]any
	decodeBody(t, response, &entries)
	if len(entries) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(entries))
	}
	if entries[0]["task_name"] != "Feed cat" {
		t.Fatalf("expected joined task name, got %+v", entries[0])
	}

	// A window in the far past excludes today's entry.
	response = doJSON(t, app, http.MethodGet, "/daily/email/ann@example.com/history?date_from=2000-01-01&date_to=2000-01-31", nil)
	expectStatus(t, response, http.StatusOK)
	decodeBody(t, response, &entries)
	if len(entries) != 0 {
		t.Fatalf("expected empty history for past window, got %+v", entries)
	}

	response = doJSON(t, app, http.MethodGet, "/daily/email/ann@example.com/history?date_from=not-a-date", nil)
	expectStatus(t, response, http.StatusUnprocessableEntity)
}
