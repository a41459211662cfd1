package db

import (
	"choreboard/internal/models"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	database *gorm.DB
}

func NewCategoryRepository(database *gorm.DB) *CategoryRepository {
	return &CategoryRepository{database: database}
}

func (repo *CategoryRepository) List(skip int, limit int) ([]models.Category, error) {
	categories := make([]models.Category, 0)
	if err := repo.database.Order("id ASC").Offset(skip).Limit(limit).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (repo *CategoryRepository) FindByID(categoryID uint) (models.Category, error) {
	var category models.Category
	if err := repo.database.First(&category, categoryID).Error; err != nil {
		return models.Category{}, err
	}
	return category, nil
}

func (repo *CategoryRepository) Create(category *models.Category) error {
	return repo.database.Create(category).Error
}

func (repo *CategoryRepository) UpdateByID(categoryID uint, updates map[string]any) error {
	return repo.database.Model(&models.Category{}).Where("id = ?", categoryID).Updates(updates).Error
}

func (repo *CategoryRepository) Delete(category *models.Category) error {
	return repo.database.Delete(category).Error
}
