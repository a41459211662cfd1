package models

type Task struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	LocationID  *uint  `gorm:"index" json:"location_id"`
}
