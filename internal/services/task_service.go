package services

import (
	"errors"

	"github.com/mpradela/managme/internal/models"
)

var ErrProjectNotFound = errors.New("project not found")

type TaskStore interface {
	List(projectID *uint) ([]models.Task, error)
	FindByID(taskID uint) (models.Task, error)
	Create(task *models.Task) error
	Save(task *models.Task) error
	Delete(taskID uint) error
}

type TaskProjectRepository interface {
	Exists(projectID uint) (bool, error)
}

type TaskMilestoneRepository interface {
	FindByID(milestoneID uint) (models.Milestone, error)
	ListByIDs(milestoneIDs []uint) ([]models.Milestone, error)
	Create(milestone *models.Milestone) error
	Delete(milestoneID uint) error
}

type TaskService struct {
	tasks      TaskStore
	projects   TaskProjectRepository
	milestones TaskMilestoneRepository
}

func NewTaskService(tasks TaskStore, projects TaskProjectRepository, milestones TaskMilestoneRepository) *TaskService {
	return &TaskService{tasks: tasks, projects: projects, milestones: milestones}
}

func (service *TaskService) List(projectID *uint) ([]models.Task, error) {
	return service.tasks.List(projectID)
}

func (service *TaskService) FindByID(taskID uint) (models.Task, error) {
	return service.tasks.FindByID(taskID)
}

func (service *TaskService) Create(task *models.Task) error {
	exists, err := service.projects.Exists(task.ProjectID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrProjectNotFound
	}
	return service.tasks.Create(task)
}

func (service *TaskService) Save(task *models.Task) error {
	exists, err := service.projects.Exists(task.ProjectID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrProjectNotFound
	}
	return service.tasks.Save(task)
}

// Delete removes the task only. Its milestones stay in storage and remain
// reachable through the flat milestone endpoints.
func (service *TaskService) Delete(taskID uint) error {
	return service.tasks.Delete(taskID)
}

func (service *TaskService) Milestones(task models.Task) ([]models.Milestone, error) {
	return service.milestones.ListByIDs(task.MilestoneIDs)
}

// CreateTaskMilestone creates a milestone under the task. The milestone's
// project reference is copied from the task, whatever the caller supplied.
// The two writes are not transactional: if appending to the task list
// fails, the milestone exists but is unlisted, which subsequent reads make
// detectable.
func (service *TaskService) CreateTaskMilestone(taskID uint, milestone *models.Milestone) error {
	task, err := service.tasks.FindByID(taskID)
	if err != nil {
		return err
	}

	milestone.StoryID = task.ProjectID
	if err := service.milestones.Create(milestone); err != nil {
		return err
	}

	task.MilestoneIDs = append(task.MilestoneIDs, milestone.ID)
	return service.tasks.Save(&task)
}

// DeleteTaskMilestone removes the milestone from storage and pulls its id
// from the task's list. No atomicity across the two writes.
func (service *TaskService) DeleteTaskMilestone(taskID uint, milestoneID uint) error {
	task, err := service.tasks.FindByID(taskID)
	if err != nil {
		return err
	}

	if err := service.milestones.Delete(milestoneID); err != nil {
		return err
	}

	remaining := make([]uint, 0, len(task.MilestoneIDs))
	for _, id := range task.MilestoneIDs {
		if id == milestoneID {
			continue
		}
		remaining = append(remaining, id)
	}
	task.MilestoneIDs = remaining
	return service.tasks.Save(&task)
}
