package services

import (
	"errors"
	"strings"
	"time"

	"choreboard/internal/db"
	"choreboard/internal/models"

	"gorm.io/gorm"
)

var (
	ErrAssignmentNotFound    = errors.New("assignment not found")
	ErrAlreadyCompletedToday = errors.New("already completed today")
	ErrCompletionNotFound    = errors.New("no completion found for today")
)

const completionTimestampLayout = "2006-01-02 15:04:05"

// DailyUserTask is a user assignment annotated with today's completion
// status for the daily checklist.
type DailyUserTask struct {
	db.TaskAssignmentWithTask
	Today          time.Time `json:"date_today"`
	CompletedToday bool      `json:"completed_today"`
	CompletedAt    string    `json:"completed_at,omitempty"`
}

// DailyEmailTask is the email-assignment counterpart of DailyUserTask.
type DailyEmailTask struct {
	ID              uint      `json:"assignment_id"`
	TaskID          uint      `json:"task_id"`
	TaskName        string    `json:"task_name"`
	TaskDescription string    `json:"task_description"`
	Email           string    `json:"email"`
	Period          string    `json:"period"`
	Today           time.Time `json:"date_today"`
	CompletedToday  bool      `json:"completed_today"`
	CompletedAt     string    `json:"completed_at,omitempty"`
}

type DailyTaskAssignmentRepository interface {
	FindByID(assignmentID uint) (models.TaskAssignment, error)
	ListWithTaskByUser(userID uint) ([]db.TaskAssignmentWithTask, error)
}

type DailyEmailAssignmentRepository interface {
	FindByID(assignmentID uint) (models.EmailAssignment, error)
	ListWithTaskByEmail(email string) ([]db.EmailAssignmentWithTask, error)
}

type DailyCompletionRepository interface {
	FindByTaskAssignmentAndDayRange(assignmentID uint, dayStart time.Time, dayEnd time.Time) (models.DailyCompletion, bool, error)
	FindByEmailAssignmentAndDayRange(assignmentID uint, dayStart time.Time, dayEnd time.Time) (models.DailyCompletion, bool, error)
	Create(completion *models.DailyCompletion) error
	Delete(completion *models.DailyCompletion) error
	HistoryByUser(userID uint, fromStart *time.Time, toEnd *time.Time) ([]db.CompletionHistoryEntry, error)
	HistoryByEmail(email string, fromStart *time.Time, toEnd *time.Time) ([]db.CompletionHistoryEntry, error)
}

type DailyService struct {
	taskAssignments  DailyTaskAssignmentRepository
	emailAssignments DailyEmailAssignmentRepository
	completions      DailyCompletionRepository
	location         *time.Location
	now              func() time.Time
}

func NewDailyService(
	taskAssignments DailyTaskAssignmentRepository,
	emailAssignments DailyEmailAssignmentRepository,
	completions DailyCompletionRepository,
	location *time.Location,
) *DailyService {
	if location == nil {
		location = time.UTC
	}
	return &DailyService{
		taskAssignments:  taskAssignments,
		emailAssignments: emailAssignments,
		completions:      completions,
		location:         location,
		now:              time.Now,
	}
}

func (service *DailyService) ListTodayForUser(userID uint) ([]DailyUserTask, error) {
	dayStart, dayEnd := DayRange(service.now(), service.location)

	rows, err := service.taskAssignments.ListWithTaskByUser(userID)
	if err != nil {
		return nil, err
	}

	tasks := make([]DailyUserTask, 0, len(rows))
	for _, row := range rows {
		completion, found, err := service.completions.FindByTaskAssignmentAndDayRange(row.ID, dayStart, dayEnd)
		if err != nil {
			return nil, err
		}
		entry := DailyUserTask{TaskAssignmentWithTask: row, Today: dayStart, CompletedToday: found}
		if found {
			entry.CompletedAt = completion.CompletedAt
		}
		tasks = append(tasks, entry)
	}
	return tasks, nil
}

func (service *DailyService) ListTodayForEmail(email string) ([]DailyEmailTask, error) {
	dayStart, dayEnd := DayRange(service.now(), service.location)

	rows, err := service.emailAssignments.ListWithTaskByEmail(email)
	if err != nil {
		return nil, err
	}

	tasks := make([]DailyEmailTask, 0, len(rows))
	for _, row := range rows {
		completion, found, err := service.completions.FindByEmailAssignmentAndDayRange(row.ID, dayStart, dayEnd)
		if err != nil {
			return nil, err
		}
		entry := DailyEmailTask{
			ID:              row.ID,
			TaskID:          row.TaskID,
			TaskName:        row.TaskName,
			TaskDescription: row.TaskDescription,
			Email:           row.Email,
			Period:          row.Period,
			Today:           dayStart,
			CompletedToday:  found,
		}
		if found {
			entry.CompletedAt = completion.CompletedAt
		}
		tasks = append(tasks, entry)
	}
	return tasks, nil
}

// CompleteTodayForUser logs today's completion of a user assignment. A
// concurrent duplicate insert trips the unique index and is reported the
// same way as the pre-insert check.
func (service *DailyService) CompleteTodayForUser(assignmentID uint) (models.DailyCompletion, error) {
	if _, err := service.taskAssignments.FindByID(assignmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DailyCompletion{}, ErrAssignmentNotFound
		}
		return models.DailyCompletion{}, err
	}

	dayStart, dayEnd := DayRange(service.now(), service.location)
	if _, found, err := service.completions.FindByTaskAssignmentAndDayRange(assignmentID, dayStart, dayEnd); err != nil {
		return models.DailyCompletion{}, err
	} else if found {
		return models.DailyCompletion{}, ErrAlreadyCompletedToday
	}

	completion := models.DailyCompletion{
		TaskAssignmentID: &assignmentID,
		Date:             dayStart,
		CompletedAt:      service.now().In(service.location).Format(completionTimestampLayout),
		Status:           1,
	}
	if err := service.completions.Create(&completion); err != nil {
		if isUniqueViolation(err) {
			return models.DailyCompletion{}, ErrAlreadyCompletedToday
		}
		return models.DailyCompletion{}, err
	}
	return completion, nil
}

func (service *DailyService) CompleteTodayForEmail(assignmentID uint) (models.DailyCompletion, error) {
	if _, err := service.emailAssignments.FindByID(assignmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DailyCompletion{}, ErrAssignmentNotFound
		}
		return models.DailyCompletion{}, err
	}

	dayStart, dayEnd := DayRange(service.now(), service.location)
	if _, found, err := service.completions.FindByEmailAssignmentAndDayRange(assignmentID, dayStart, dayEnd); err != nil {
		return models.DailyCompletion{}, err
	} else if found {
		return models.DailyCompletion{}, ErrAlreadyCompletedToday
	}

	completion := models.DailyCompletion{
		EmailAssignmentID: &assignmentID,
		Date:              dayStart,
		CompletedAt:       service.now().In(service.location).Format(completionTimestampLayout),
		Status:            1,
	}
	if err := service.completions.Create(&completion); err != nil {
		if isUniqueViolation(err) {
			return models.DailyCompletion{}, ErrAlreadyCompletedToday
		}
		return models.DailyCompletion{}, err
	}
	return completion, nil
}

func (service *DailyService) UndoTodayForUser(assignmentID uint) error {
	dayStart, dayEnd := DayRange(service.now(), service.location)
	completion, found, err := service.completions.FindByTaskAssignmentAndDayRange(assignmentID, dayStart, dayEnd)
	if err != nil {
		return err
	}
	if !found {
		return ErrCompletionNotFound
	}
	return service.completions.Delete(&completion)
}

func (service *DailyService) UndoTodayForEmail(assignmentID uint) error {
	dayStart, dayEnd := DayRange(service.now(), service.location)
	completion, found, err := service.completions.FindByEmailAssignmentAndDayRange(assignmentID, dayStart, dayEnd)
	if err != nil {
		return err
	}
	if !found {
		return ErrCompletionNotFound
	}
	return service.completions.Delete(&completion)
}

func (service *DailyService) HistoryForUser(userID uint, from *time.Time, to *time.Time) ([]db.CompletionHistoryEntry, error) {
	fromStart, toEnd := service.historyBounds(from, to)
	return service.completions.HistoryByUser(userID, fromStart, toEnd)
}

func (service *DailyService) HistoryForEmail(email string, from *time.Time, to *time.Time) ([]db.CompletionHistoryEntry, error) {
	fromStart, toEnd := service.historyBounds(from, to)
	return service.completions.HistoryByEmail(email, fromStart, toEnd)
}

// historyBounds widens inclusive calendar-day bounds into the half-open
// window the repositories query with.
func (service *DailyService) historyBounds(from *time.Time, to *time.Time) (*time.Time, *time.Time) {
	var fromStart *time.Time
	var toEnd *time.Time
	if from != nil {
		start := DateAtLocation(*from, service.location)
		fromStart = &start
	}
	if to != nil {
		_, end := DayRange(*to, service.location)
		toEnd = &end
	}
	return fromStart, toEnd
}

// Timestamp renders the current moment in the stored completion format.
func (service *DailyService) Timestamp() string {
	return service.now().In(service.location).Format(completionTimestampLayout)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
