package models

import "time"

// DailyCompletion logs that a specific assignment was completed on a
// specific calendar day. Exactly one of TaskAssignmentID and
// EmailAssignmentID is set. The unique indexes allow at most one record
// per assignment per day, which also makes concurrent duplicate
// completions safe.
type DailyCompletion struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	TaskAssignmentID  *uint     `gorm:"uniqueIndex:uidx_task_assignment_day" json:"task_assignment_id,omitempty"`
	EmailAssignmentID *uint     `gorm:"uniqueIndex:uidx_email_assignment_day" json:"email_assignment_id,omitempty"`
	Date              time.Time `gorm:"type:date;not null;uniqueIndex:uidx_task_assignment_day;uniqueIndex:uidx_email_assignment_day" json:"date"`
	CompletedAt       string    `gorm:"not null" json:"completed_at"`
	Status            int       `gorm:"not null;default:1" json:"status"`
}
