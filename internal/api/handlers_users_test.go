package api

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"choreboard/internal/models"
	"choreboard/internal/services"
)

func TestUserCreateHashesPasswordAndOmitsIt(t *testing.T) {
	app := newTestApp(t)

	var created models.User
	createViaAPI(t, app, "/users", map[string]any{
		"name":     "Bob",
		"login":    "bob",
		"password": "secret123",
	}, &created)

	if created.AccountKind != models.AccountSimple {
		t.Fatalf("expected simple account, got %q", created.AccountKind)
	}

	response := doJSON(t, app, http.MethodGet, "/users/1", nil)
	expectStatus(t, response, http.StatusOK)
	raw, _ := io.ReadAll(response.Body)
	response.Body.Close()
	if strings.Contains(string(raw), "secret123") || strings.Contains(string(raw), "password") {
		t.Fatalf("user payload leaks credentials: %s", raw)
	}
}

func TestUserCreateDuplicateLogin(t *testing.T) {
	app := newTestApp(t)

	var created models.User
	createViaAPI(t, app, "/users", map[string]any{"name": "Bob", "login": "bob", "password": "x"}, &created)

	response := doJSON(t, app, http.MethodPost, "/users", map[string]any{"name": "Bobby", "login": "bob", "password": "y"})
	expectStatus(t, response, http.StatusBadRequest)
}

func TestLoginOutcomesAreAlways200(t *testing.T) {
	app := newTestApp(t)

	var created models.User
	createViaAPI(t, app, "/users", map[string]any{"name": "Bob", "login": "bob", "password": "secret123"}, &created)

	response := doJSON(t, app, http.MethodPost, "/users/login", map[string]any{"login": "bob", "password": "secret123"})
	expectStatus(t, response, http.StatusOK)
	var result services.LoginResult
	decodeBody(t, response, &result)
	if !result.Success || result.User == nil || result.User.Login != "bob" {
		t.Fatalf("expected successful login for bob, got %+v", result)
	}

	response = doJSON(t, app, http.MethodPost, "/users/login", map[string]any{"login": "bob", "password": "wrong"})
	expectStatus(t, response, http.StatusOK)
	decodeBody(t, response, &result)
	if result.Success || result.User != nil {
		t.Fatalf("expected failed login, got %+v", result)
	}

	response = doJSON(t, app, http.MethodPost, "/users/login", map[string]any{"login": "nobody", "password": "x"})
	expectStatus(t, response, http.StatusOK)
	decodeBody(t, response, &result)
	if result.Success {
		t.Fatal("expected failure for unknown login")
	}
	if !strings.Contains(result.Message, "not found") {
		t.Fatalf("expected not-found message, got %q", result.Message)
	}
}

func TestExternalLoginAutoProvisions(t *testing.T) {
	app := newTestApp(t)

	response := doJSON(t, app, http.MethodPost, "/users/login/external", map[string]any{"email": "jane.doe@example.com"})
	expectStatus(t, response, http.StatusOK)

	var result services.LoginResult
	decodeBody(t, response, &result)
	if !result.Success || result.User == nil {
		t.Fatalf("expected auto-provisioned login, got %+v", result)
	}
	if result.User.Name != "Jane Doe" {
		t.Fatalf("expected derived name Jane Doe, got %q", result.User.Name)
	}
	if result.User.AccountKind != models.AccountExternal {
		t.Fatalf("expected external account, got %q", result.User.AccountKind)
	}
	firstID := result.User.ID

	response = doJSON(t, app, http.MethodPost, "/users/login/external", map[string]any{"email": "jane.doe@example.com"})
	expectStatus(t, response, http.StatusOK)
	decodeBody(t, response, &result)
	if !result.Success || result.User == nil || result.User.ID != firstID {
		t.Fatalf("expected same user on second login, got %+v", result)
	}
}

func TestLoginKindMismatches(t *testing.T) {
	app := newTestApp(t)

	var external models.User
	createViaAPI(t, app, "/users/external", map[string]any{"name": "Ann", "email": "ann@example.com"}, &external)

	// Password login against an external account.
	response := doJSON(t, app, http.MethodPost, "/users/login", map[string]any{"login": "ann@example.com", "password": "x"})
	expectStatus(t, response, http.StatusOK)
	var result services.LoginResult
	decodeBody(t, response, &result)
	if result.Success {
		t.Fatal("expected rejection for external account via password login")
	}

	var simple models.User
	createViaAPI(t, app, "/users", map[string]any{"name": "Bob", "login": "bob", "password": "x"}, &simple)
	response = doJSON(t, app, http.MethodPut, "/users/2", map[string]any{"email": "bob@example.com"})
	expectStatus(t, response, http.StatusOK)

	// External login against a simple account's email.
	response = doJSON(t, app, http.MethodPost, "/users/login/external", map[string]any{"email": "bob@example.com"})
	expectStatus(t, response, http.StatusOK)
	decodeBody(t, response, &result)
	if result.Success {
		t.Fatal("expected rejection for simple account via external login")
	}
}

func TestExternalUserDuplicateEmail(t *testing.T) {
	app := newTestApp(t)

	var created models.User
	createViaAPI(t, app, "/users/external", map[string]any{"name": "Ann", "email": "ann@example.com"}, &created)

	response := doJSON(t, app, http.MethodPost, "/users/external", map[string]any{"name": "Annie", "email": "ann@example.com"})
	expectStatus(t, response, http.StatusBadRequest)
}
