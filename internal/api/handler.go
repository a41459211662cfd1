package api

import (
	"time"

	"choreboard/internal/db"
	"choreboard/internal/services"

	"gorm.io/gorm"
)

type Handler struct {
	repositories *db.Repositories
	authService  *services.AuthService
	dailyService *services.DailyService
	location     *time.Location
}

func NewHandler(database *gorm.DB, location *time.Location) *Handler {
	if location == nil {
		location = time.UTC
	}
	repositories := db.NewRepositories(database)
	return &Handler{
		repositories: repositories,
		authService:  services.NewAuthService(repositories.Users),
		dailyService: services.NewDailyService(
			repositories.TaskAssignments,
			repositories.EmailAssignments,
			repositories.Completions,
			location,
		),
		location: location,
	}
}
