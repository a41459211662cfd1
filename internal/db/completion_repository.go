package db

import (
	"time"

	"choreboard/internal/models"

	"gorm.io/gorm"
)

// CompletionHistoryEntry is a completion record joined with the task (and
// assignee) it was logged for, ordered by day for the history endpoints.
type CompletionHistoryEntry struct {
	ID                uint      `gorm:"column:id" json:"id"`
	TaskAssignmentID  *uint     `gorm:"column:task_assignment_id" json:"task_assignment_id,omitempty"`
	EmailAssignmentID *uint     `gorm:"column:email_assignment_id" json:"email_assignment_id,omitempty"`
	TaskName          string    `gorm:"column:task_name" json:"task_name"`
	TaskDescription   string    `gorm:"column:task_description" json:"task_description"`
	UserName          string    `gorm:"column:user_name" json:"user_name,omitempty"`
	Email             string    `gorm:"column:email" json:"email,omitempty"`
	Date              time.Time `gorm:"column:date" json:"date"`
	CompletedAt       string    `gorm:"column:completed_at" json:"completed_at"`
	Status            int       `gorm:"column:status" json:"status"`
}

type CompletionRepository struct {
	database *gorm.DB
}

func NewCompletionRepository(database *gorm.DB) *CompletionRepository {
	return &CompletionRepository{database: database}
}

func (repo *CompletionRepository) FindByTaskAssignmentAndDayRange(assignmentID uint, dayStart time.Time, dayEnd time.Time) (models.DailyCompletion, bool, error) {
	var completion models.DailyCompletion
	result := repo.database.
		Where("task_assignment_id = ? AND date >= ? AND date < ?", assignmentID, dayStart, dayEnd).
		Limit(1).
		Find(&completion)
	if result.Error != nil {
		return models.DailyCompletion{}, false, result.Error
	}
	return completion, result.RowsAffected > 0, nil
}

func (repo *CompletionRepository) FindByEmailAssignmentAndDayRange(assignmentID uint, dayStart time.Time, dayEnd time.Time) (models.DailyCompletion, bool, error) {
	var completion models.DailyCompletion
	result := repo.database.
		Where("email_assignment_id = ? AND date >= ? AND date < ?", assignmentID, dayStart, dayEnd).
		Limit(1).
		Find(&completion)
	if result.Error != nil {
		return models.DailyCompletion{}, false, result.Error
	}
	return completion, result.RowsAffected > 0, nil
}

func (repo *CompletionRepository) Create(completion *models.DailyCompletion) error {
	return repo.database.Create(completion).Error
}

func (repo *CompletionRepository) Delete(completion *models.DailyCompletion) error {
	return repo.database.Delete(completion).Error
}

func (repo *CompletionRepository) HistoryByUser(userID uint, fromStart *time.Time, toEnd *time.Time) ([]CompletionHistoryEntry, error) {
	query := repo.database.
		Table("daily_completions").
		Select("daily_completions.id AS id",
			"daily_completions.task_assignment_id AS task_assignment_id",
			"tasks.name AS task_name",
			"tasks.description AS task_description",
			"users.name AS user_name",
			"daily_completions.date AS date",
			"daily_completions.completed_at AS completed_at",
			"daily_completions.status AS status").
		Joins("JOIN task_assignments ON task_assignments.id = daily_completions.task_assignment_id").
		Joins("JOIN tasks ON tasks.id = task_assignments.task_id").
		Joins("JOIN users ON users.id = task_assignments.user_id").
		Where("task_assignments.user_id = ?", userID)
	return repo.scanHistory(query, fromStart, toEnd)
}

func (repo *CompletionRepository) HistoryByEmail(email string, fromStart *time.Time, toEnd *time.Time) ([]CompletionHistoryEntry, error) {
	query := repo.database.
		Table("daily_completions").
		Select("daily_completions.id AS id",
			"daily_completions.email_assignment_id AS email_assignment_id",
			"tasks.name AS task_name",
			"tasks.description AS task_description",
			"email_assignments.email AS email",
			"daily_completions.date AS date",
			"daily_completions.completed_at AS completed_at",
			"daily_completions.status AS status").
		Joins("JOIN email_assignments ON email_assignments.id = daily_completions.email_assignment_id").
		Joins("JOIN tasks ON tasks.id = email_assignments.task_id").
		Where("email_assignments.email = ?", email)
	return repo.scanHistory(query, fromStart, toEnd)
}

func (repo *CompletionRepository) scanHistory(query *gorm.DB, fromStart *time.Time, toEnd *time.Time) ([]CompletionHistoryEntry, error) {
	if fromStart != nil {
		query = query.Where("daily_completions.date >= ?", *fromStart)
	}
	if toEnd != nil {
		query = query.Where("daily_completions.date < ?", *toEnd)
	}

	entries := make([]CompletionHistoryEntry, 0)
	if err := query.Order("daily_completions.date DESC, daily_completions.id DESC").Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
