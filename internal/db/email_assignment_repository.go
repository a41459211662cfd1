package db

import (
	"time"

	"choreboard/internal/models"

	"gorm.io/gorm"
)

// EmailAssignmentWithTask is an email assignment row joined with the task
// it points at, mirroring the detailed listing the clients render.
type EmailAssignmentWithTask struct {
	ID              uint       `gorm:"column:id" json:"assignment_id"`
	TaskID          uint       `gorm:"column:task_id" json:"task_id"`
	TaskName        string     `gorm:"column:task_name" json:"task_name"`
	TaskDescription string     `gorm:"column:task_description" json:"task_description"`
	Email           string     `gorm:"column:email" json:"email"`
	Date            *time.Time `gorm:"column:date" json:"date"`
	Period          string     `gorm:"column:period" json:"period"`
	Done            int        `gorm:"column:done" json:"done"`
	CompletedAt     string     `gorm:"column:completed_at" json:"completed_at"`
}

type EmailAssignmentRepository struct {
	database *gorm.DB
}

func NewEmailAssignmentRepository(database *gorm.DB) *EmailAssignmentRepository {
	return &EmailAssignmentRepository{database: database}
}

func (repo *EmailAssignmentRepository) List(skip int, limit int) ([]models.EmailAssignment, error) {
	assignments := make([]models.EmailAssignment, 0)
	if err := repo.database.Order("id ASC").Offset(skip).Limit(limit).Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (repo *EmailAssignmentRepository) FindByID(assignmentID uint) (models.EmailAssignment, error) {
	var assignment models.EmailAssignment
	if err := repo.database.First(&assignment, assignmentID).Error; err != nil {
		return models.EmailAssignment{}, err
	}
	return assignment, nil
}

func (repo *EmailAssignmentRepository) ListByEmail(email string) ([]models.EmailAssignment, error) {
	assignments := make([]models.EmailAssignment, 0)
	if err := repo.database.Where("email = ?", email).Order("id ASC").Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (repo *EmailAssignmentRepository) ListPendingByEmail(email string) ([]models.EmailAssignment, error) {
	assignments := make([]models.EmailAssignment, 0)
	if err := repo.database.Where("email = ? AND done = 0", email).Order("id ASC").Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (repo *EmailAssignmentRepository) ListWithTaskByEmail(email string) ([]EmailAssignmentWithTask, error) {
	rows := make([]EmailAssignmentWithTask, 0)
	if err := repo.database.
		Table("email_assignments").
		Select("email_assignments.id AS id",
			"email_assignments.task_id AS task_id",
			"tasks.name AS task_name",
			"tasks.description AS task_description",
			"email_assignments.email AS email",
			"email_assignments.date AS date",
			"email_assignments.period AS period",
			"email_assignments.done AS done",
			"email_assignments.completed_at AS completed_at").
		Joins("JOIN tasks ON tasks.id = email_assignments.task_id").
		Where("email_assignments.email = ?", email).
		Order("email_assignments.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (repo *EmailAssignmentRepository) Create(assignment *models.EmailAssignment) error {
	return repo.database.Create(assignment).Error
}

func (repo *EmailAssignmentRepository) UpdateByID(assignmentID uint, updates map[string]any) error {
	return repo.database.Model(&models.EmailAssignment{}).Where("id = ?", assignmentID).Updates(updates).Error
}

func (repo *EmailAssignmentRepository) MarkDone(assignmentID uint, completedAt string) error {
	return repo.database.Model(&models.EmailAssignment{}).Where("id = ?", assignmentID).Updates(map[string]any{
		"done":         1,
		"completed_at": completedAt,
	}).Error
}

func (repo *EmailAssignmentRepository) Delete(assignment *models.EmailAssignment) error {
	return repo.database.Delete(assignment).Error
}
