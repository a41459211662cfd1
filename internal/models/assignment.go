package models

import "time"

// TaskAssignment links a task to a household user for a given day and
// period label. Done and CompletedAt are the legacy whole-assignment
// completion marker; the per-day log lives in DailyCompletion.
type TaskAssignment struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"not null;index" json:"user_id"`
	TaskID      uint       `gorm:"not null;index" json:"task_id"`
	Date        *time.Time `gorm:"type:date" json:"date"`
	Period      string     `json:"period"`
	Done        int        `gorm:"not null;default:0" json:"done"`
	CompletedAt string     `json:"completed_at"`
}

// EmailAssignment links a task to a bare email address, for household
// members that have no user record.
type EmailAssignment struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	TaskID      uint       `gorm:"not null;index" json:"task_id"`
	Email       string     `gorm:"not null;index" json:"email"`
	Date        *time.Time `gorm:"type:date" json:"date"`
	Period      string     `json:"period"`
	Done        int        `gorm:"not null;default:0" json:"done"`
	CompletedAt string     `json:"completed_at"`
}
