package db

import (
	"choreboard/internal/models"

	"gorm.io/gorm"
)

type LocationRepository struct {
	database *gorm.DB
}

func NewLocationRepository(database *gorm.DB) *LocationRepository {
	return &LocationRepository{database: database}
}

func (repo *LocationRepository) List(skip int, limit int) ([]models.Location, error) {
	locations := make([]models.Location, 0)
	if err := repo.database.Order("id ASC").Offset(skip).Limit(limit).Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (repo *LocationRepository) FindByID(locationID uint) (models.Location, error) {
	var location models.Location
	if err := repo.database.First(&location, locationID).Error; err != nil {
		return models.Location{}, err
	}
	return location, nil
}

func (repo *LocationRepository) Create(location *models.Location) error {
	return repo.database.Create(location).Error
}

func (repo *LocationRepository) UpdateByID(locationID uint, updates map[string]any) error {
	return repo.database.Model(&models.Location{}).Where("id = ?", locationID).Updates(updates).Error
}

func (repo *LocationRepository) Delete(location *models.Location) error {
	return repo.database.Delete(location).Error
}
