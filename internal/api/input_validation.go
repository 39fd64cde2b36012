package api

import (
	"strings"

	"github.com/mpradela/managme/internal/models"
)

const (
	minPasswordLength = 6
	maxNameLength     = 120
	maxLoginLength    = 254
	maxTitleLength    = 200
)

func (input *registerInput) validate() bool {
	input.Imie = strings.TrimSpace(input.Imie)
	input.Nazwisko = strings.TrimSpace(input.Nazwisko)
	input.Login = strings.TrimSpace(input.Login)

	if input.Imie == "" || len(input.Imie) > maxNameLength {
		return false
	}
	if len(input.Nazwisko) > maxNameLength {
		return false
	}
	if input.Login == "" || len(input.Login) > maxLoginLength {
		return false
	}
	if len(input.Password) < minPasswordLength {
		return false
	}
	return true
}

func (input *profileInput) validate() bool {
	input.Imie = strings.TrimSpace(input.Imie)
	input.Nazwisko = strings.TrimSpace(input.Nazwisko)
	if input.Imie == "" || len(input.Imie) > maxNameLength {
		return false
	}
	return len(input.Nazwisko) <= maxNameLength
}

func (input *projectInput) validate() bool {
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	if input.Name == "" || len(input.Name) > maxTitleLength {
		return false
	}
	if input.Description == "" {
		return false
	}
	if input.Status == "" {
		input.Status = models.ProjectStatusPlanned
	}
	return models.IsValidProjectStatus(input.Status)
}

func (input *taskInput) validate() bool {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" || len(input.Title) > maxTitleLength {
		return false
	}
	if input.ProjectID == 0 {
		return false
	}
	if input.Status == "" {
		input.Status = models.TaskStatusTodo
	}
	if input.Priority == "" {
		input.Priority = models.PriorityMedium
	}
	return models.IsValidTaskStatus(input.Status) && models.IsValidPriority(input.Priority)
}

// validate checks milestone fields shared by the standalone and task-scoped
// create paths. requireStory is false on the task-scoped path, where the
// project reference comes from the task instead of the payload.
func (input *milestoneInput) validate(requireStory bool) bool {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" || len(input.Name) > maxTitleLength {
		return false
	}
	if requireStory && input.StoryID == 0 {
		return false
	}
	if input.EstimatedTime < 0 {
		return false
	}
	if input.Status == "" {
		input.Status = models.MilestoneStatusTodo
	}
	if input.Priority == "" {
		input.Priority = models.PriorityMedium
	}
	return models.IsValidMilestoneStatus(input.Status) && models.IsValidPriority(input.Priority)
}
