package api

import (
	"net/http"
	"testing"

	"choreboard/internal/models"
)

func TestTaskCreateWithLocation(t *testing.T) {
	app := newTestApp(t)

	var location models.Location
	createViaAPI(t, app, "/locations", map[string]any{"description": "Kitchen"}, &location)

	var task models.Task
	createViaAPI(t, app, "/tasks", map[string]any{
		"name":        "Wash dishes",
		"description": "After dinner",
		"location_id": location.ID,
	}, &task)

	if task.LocationID == nil || *task.LocationID != location.ID {
		t.Fatalf("expected location_id %d, got %v", location.ID, task.LocationID)
	}

	response := doJSON(t, app, http.MethodGet, "/tasks/location/1", nil)
	expectStatus(t, response, http.StatusOK)

	var atLocation []models.Task
	decodeBody(t, response, &atLocation)
	if len(atLocation) != 1 || atLocation[0].ID != task.ID {
		t.Fatalf("expected task %d at location, got %+v", task.ID, atLocation)
	}
}

func TestTaskCreateRequiresName(t *testing.T) {
	app := newTestApp(t)

	response := doJSON(t, app, http.MethodPost, "/tasks", map[string]any{"description": "no name"})
	expectStatus(t, response, http.StatusUnprocessableEntity)
}

func TestTaskPartialUpdateKeepsOmittedFields(t *testing.T) {
	app := newTestApp(t)

	var task models.Task
	createViaAPI(t, app, "/tasks", map[string]any{
		"name":        "Mow lawn",
		"description": "Front and back",
	}, &task)

	response := doJSON(t, app, http.MethodPut, "/tasks/1", map[string]any{"name": "Mow the lawn"})
	expectStatus(t, response, http.StatusOK)

	var updated models.Task
	decodeBody(t, response, &updated)
	if updated.Name != "Mow the lawn" {
		t.Fatalf("expected updated name, got %q", updated.Name)
	}
	if updated.Description != "Front and back" {
		t.Fatalf("expected description to be kept, got %q", updated.Description)
	}
}

func TestDeleteLocationClearsTaskReference(t *testing.T) {
	app := newTestApp(t)

	var location models.Location
	createViaAPI(t, app, "/locations", map[string]any{"description": "Garage"}, &location)

	var task models.Task
	createViaAPI(t, app, "/tasks", map[string]any{
		"name":        "Sweep floor",
		"location_id": location.ID,
	}, &task)

	response := doJSON(t, app, http.MethodDelete, "/locations/1", nil)
	expectStatus(t, response, http.StatusNoContent)

	response = doJSON(t, app, http.MethodGet, "/tasks/1", nil)
	expectStatus(t, response, http.StatusOK)

	var orphaned models.Task
	decodeBody(t, response, &orphaned)
	if orphaned.LocationID != nil {
		t.Fatalf("expected location reference cleared, got %v", *orphaned.LocationID)
	}
}

func TestTaskUpdateNotFound(t *testing.T) {
	app := newTestApp(t)

	response := doJSON(t, app, http.MethodPut, "/tasks/99", map[string]any{"name": "ghost"})
	expectStatus(t, response, http.StatusNotFound)
}
