package db

import "gorm.io/gorm"

type Repositories struct {
	Locations        *LocationRepository
	Categories       *CategoryRepository
	Tasks            *TaskRepository
	Users            *UserRepository
	TaskAssignments  *TaskAssignmentRepository
	EmailAssignments *EmailAssignmentRepository
	Completions      *CompletionRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Locations:        NewLocationRepository(database),
		Categories:       NewCategoryRepository(database),
		Tasks:            NewTaskRepository(database),
		Users:            NewUserRepository(database),
		TaskAssignments:  NewTaskAssignmentRepository(database),
		EmailAssignments: NewEmailAssignmentRepository(database),
		Completions:      NewCompletionRepository(database),
	}
}
