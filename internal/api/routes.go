package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/", handler.Root)
	app.Get("/healthz", handler.Health)

	locations := app.Group("/locations")
	locations.Get("", handler.ListLocations)
	locations.Get("/:id", handler.GetLocation)
	locations.Post("", handler.CreateLocation)
	locations.Put("/:id", handler.UpdateLocation)
	locations.Delete("/:id", handler.DeleteLocation)

	categories := app.Group("/categories")
	categories.Get("", handler.ListCategories)
	categories.Get("/:id", handler.GetCategory)
	categories.Post("", handler.CreateCategory)
	categories.Put("/:id", handler.UpdateCategory)
	categories.Delete("/:id", handler.DeleteCategory)

	tasks := app.Group("/tasks")
	tasks.Get("", handler.ListTasks)
	tasks.Get("/location/:id", handler.ListTasksByLocation)
	tasks.Get("/:id", handler.GetTask)
	tasks.Post("", handler.CreateTask)
	tasks.Put("/:id", handler.UpdateTask)
	tasks.Delete("/:id", handler.DeleteTask)

	users := app.Group("/users")
	users.Post("/login", handler.Login)
	users.Post("/login/external", handler.LoginExternal)
	users.Post("/external", handler.CreateExternalUser)
	users.Get("", handler.ListUsers)
	users.Get("/:id", handler.GetUser)
	users.Post("", handler.CreateUser)
	users.Put("/:id", handler.UpdateUser)
	users.Delete("/:id", handler.DeleteUser)

	assignments := app.Group("/assignments")
	assignments.Get("", handler.ListTaskAssignments)
	assignments.Get("/user/:id/pending", handler.ListPendingTaskAssignmentsByUser)
	assignments.Get("/user/:id", handler.ListTaskAssignmentsByUser)
	assignments.Get("/task/:id", handler.ListTaskAssignmentsByTask)
	assignments.Get("/:id", handler.GetTaskAssignment)
	assignments.Post("", handler.CreateTaskAssignment)
	assignments.Put("/:id", handler.UpdateTaskAssignment)
	assignments.Patch("/:id/complete", handler.CompleteTaskAssignment)
	assignments.Delete("/:id", handler.DeleteTaskAssignment)

	emailAssignments := app.Group("/email-assignments")
	emailAssignments.Get("", handler.ListEmailAssignments)
	emailAssignments.Get("/email/:email/pending", handler.ListPendingEmailAssignmentsByEmail)
	emailAssignments.Get("/email/:email/detailed", handler.ListDetailedEmailAssignmentsByEmail)
	emailAssignments.Get("/email/:email", handler.ListEmailAssignmentsByEmail)
	emailAssignments.Get("/:id", handler.GetEmailAssignment)
	emailAssignments.Post("", handler.CreateEmailAssignment)
	emailAssignments.Put("/:id", handler.UpdateEmailAssignment)
	emailAssignments.Patch("/:id/complete", handler.CompleteEmailAssignment)
	emailAssignments.Delete("/:id", handler.DeleteEmailAssignment)

	daily := app.Group("/daily")
	daily.Get("/user/:id/history", handler.DailyHistoryForUser)
	daily.Get("/user/:id", handler.ListDailyTasksForUser)
	daily.Post("/user/:id/complete", handler.CompleteDailyTaskForUser)
	daily.Delete("/user/:id/undo", handler.UndoDailyTaskForUser)
	daily.Get("/email/:email/history", handler.DailyHistoryForEmail)
	daily.Get("/email/:email", handler.ListDailyTasksForEmail)
	daily.Post("/email/:id/complete", handler.CompleteDailyTaskForEmail)
	daily.Delete("/email/:id/undo", handler.UndoDailyTaskForEmail)
}
