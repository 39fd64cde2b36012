package services

import "github.com/mpradela/managme/internal/models"

type ProjectStore interface {
	List() ([]models.Project, error)
	FindByID(projectID uint) (models.Project, error)
	Exists(projectID uint) (bool, error)
	Create(project *models.Project) error
	Save(project *models.Project) error
	DeleteCascade(projectID uint) error
}

type TeamMemberRepository interface {
	FilterExistingIDs(userIDs []uint) ([]uint, error)
	ListByIDs(userIDs []uint) ([]models.User, error)
}

type ProjectService struct {
	projects ProjectStore
	users    TeamMemberRepository
}

func NewProjectService(projects ProjectStore, users TeamMemberRepository) *ProjectService {
	return &ProjectService{projects: projects, users: users}
}

func (service *ProjectService) List() ([]models.Project, error) {
	return service.projects.List()
}

func (service *ProjectService) FindByID(projectID uint) (models.Project, error) {
	return service.projects.FindByID(projectID)
}

// SanitizeTeam drops identifiers that do not name an existing user, so a
// stored team always references valid accounts.
func (service *ProjectService) SanitizeTeam(userIDs []uint) ([]uint, error) {
	return service.users.FilterExistingIDs(userIDs)
}

func (service *ProjectService) TeamMembers(userIDs []uint) ([]models.User, error) {
	return service.users.ListByIDs(userIDs)
}

func (service *ProjectService) Create(project *models.Project) error {
	team, err := service.SanitizeTeam(project.TeamIDs)
	if err != nil {
		return err
	}
	project.TeamIDs = team
	return service.projects.Create(project)
}

func (service *ProjectService) Save(project *models.Project) error {
	team, err := service.SanitizeTeam(project.TeamIDs)
	if err != nil {
		return err
	}
	project.TeamIDs = team
	return service.projects.Save(project)
}

// Delete removes the project and everything under it: tasks of the project
// and milestones whose story points at it, in one transaction.
func (service *ProjectService) Delete(projectID uint) error {
	return service.projects.DeleteCascade(projectID)
}
