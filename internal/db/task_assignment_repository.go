package db

import (
	"choreboard/internal/models"

	"gorm.io/gorm"
)

// TaskAssignmentWithTask is an assignment row joined with the task it
// points at and the assignee's name, for the daily-task listings.
type TaskAssignmentWithTask struct {
	ID              uint   `gorm:"column:id" json:"assignment_id"`
	TaskID          uint   `gorm:"column:task_id" json:"task_id"`
	TaskName        string `gorm:"column:task_name" json:"task_name"`
	TaskDescription string `gorm:"column:task_description" json:"task_description"`
	UserID          uint   `gorm:"column:user_id" json:"user_id"`
	UserName        string `gorm:"column:user_name" json:"user_name"`
	Period          string `gorm:"column:period" json:"period"`
}

type TaskAssignmentRepository struct {
	database *gorm.DB
}

func NewTaskAssignmentRepository(database *gorm.DB) *TaskAssignmentRepository {
	return &TaskAssignmentRepository{database: database}
}

func (repo *TaskAssignmentRepository) List(skip int, limit int) ([]models.TaskAssignment, error) {
	assignments := make([]models.TaskAssignment, 0)
	if err := repo.database.Order("id ASC").Offset(skip).Limit(limit).Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (repo *TaskAssignmentRepository) FindByID(assignmentID uint) (models.TaskAssignment, error) {
	var assignment models.TaskAssignment
	if err := repo.database.First(&assignment, assignmentID).Error; err != nil {
		return models.TaskAssignment{}, err
	}
	return assignment, nil
}

func (repo *TaskAssignmentRepository) ListByUser(userID uint) ([]models.TaskAssignment, error) {
	assignments := make([]models.TaskAssignment, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("id ASC").Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (repo *TaskAssignmentRepository) ListByTask(taskID uint) ([]models.TaskAssignment, error) {
	assignments := make([]models.TaskAssignment, 0)
	if err := repo.database.Where("task_id = ?", taskID).Order("id ASC").Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (repo *TaskAssignmentRepository) ListPendingByUser(userID uint) ([]models.TaskAssignment, error) {
	assignments := make([]models.TaskAssignment, 0)
	if err := repo.database.Where("user_id = ? AND done = 0", userID).Order("id ASC").Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (repo *TaskAssignmentRepository) ListWithTaskByUser(userID uint) ([]TaskAssignmentWithTask, error) {
	rows := make([]TaskAssignmentWithTask, 0)
	if err := repo.database.
		Table("task_assignments").
		Select("task_assignments.id AS id",
			"task_assignments.task_id AS task_id",
			"tasks.name AS task_name",
			"tasks.description AS task_description",
			"task_assignments.user_id AS user_id",
			"users.name AS user_name",
			"task_assignments.period AS period").
		Joins("JOIN tasks ON tasks.id = task_assignments.task_id").
		Joins("JOIN users ON users.id = task_assignments.user_id").
		Where("task_assignments.user_id = ?", userID).
		Order("task_assignments.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (repo *TaskAssignmentRepository) Create(assignment *models.TaskAssignment) error {
	return repo.database.Create(assignment).Error
}

func (repo *TaskAssignmentRepository) UpdateByID(assignmentID uint, updates map[string]any) error {
	return repo.database.Model(&models.TaskAssignment{}).Where("id = ?", assignmentID).Updates(updates).Error
}

func (repo *TaskAssignmentRepository) MarkDone(assignmentID uint, completedAt string) error {
	return repo.database.Model(&models.TaskAssignment{}).Where("id = ?", assignmentID).Updates(map[string]any{
		"done":         1,
		"completed_at": completedAt,
	}).Error
}

func (repo *TaskAssignmentRepository) Delete(assignment *models.TaskAssignment) error {
	return repo.database.Delete(assignment).Error
}
