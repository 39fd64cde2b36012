package db

import "gorm.io/gorm"

type Repositories struct {
	Users      *UserRepository
	Projects   *ProjectRepository
	Tasks      *TaskRepository
	Milestones *MilestoneRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:      NewUserRepository(database),
		Projects:   NewProjectRepository(database),
		Tasks:      NewTaskRepository(database),
		Milestones: NewMilestoneRepository(database),
	}
}
