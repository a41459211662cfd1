package db

import (
	"choreboard/internal/models"

	"gorm.io/gorm"
)

type TaskRepository struct {
	database *gorm.DB
}

func NewTaskRepository(database *gorm.DB) *TaskRepository {
	return &TaskRepository{database: database}
}

func (repo *TaskRepository) List(skip int, limit int) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	if err := repo.database.Order("id ASC").Offset(skip).Limit(limit).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (repo *TaskRepository) ListByLocation(locationID uint) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	if err := repo.database.Where("location_id = ?", locationID).Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (repo *TaskRepository) FindByID(taskID uint) (models.Task, error) {
	var task models.Task
	if err := repo.database.First(&task, taskID).Error; err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (repo *TaskRepository) Create(task *models.Task) error {
	return repo.database.Create(task).Error
}

func (repo *TaskRepository) UpdateByID(taskID uint, updates map[string]any) error {
	return repo.database.Model(&models.Task{}).Where("id = ?", taskID).Updates(updates).Error
}

func (repo *TaskRepository) Delete(task *models.Task) error {
	return repo.database.Delete(task).Error
}
