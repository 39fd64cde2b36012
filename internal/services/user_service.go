package services

import (
	"errors"

	"github.com/mpradela/managme/internal/db"
	"github.com/mpradela/managme/internal/models"
)

// ErrPrimaryAdminImmutable rejects demotion or deletion of the primary
// administrator account, regardless of who asks.
var ErrPrimaryAdminImmutable = errors.New("primary admin account is immutable")

type UserDirectoryRepository interface {
	FindByID(userID uint) (models.User, error)
	ListWithTaskCounts() ([]db.UserWithTaskCount, error)
	Save(user *models.User) error
	Delete(userID uint) error
}

type MemberProjectRepository interface {
	ListByTeamMember(userID uint) ([]models.Project, error)
}

type AssigneeTaskRepository interface {
	ListByAssignee(userID uint) ([]models.Task, error)
}

type UserService struct {
	users             UserDirectoryRepository
	projects          MemberProjectRepository
	tasks             AssigneeTaskRepository
	primaryAdminLogin string
}

func NewUserService(users UserDirectoryRepository, projects MemberProjectRepository, tasks AssigneeTaskRepository, primaryAdminLogin string) *UserService {
	return &UserService{
		users:             users,
		projects:          projects,
		tasks:             tasks,
		primaryAdminLogin: normalizeLogin(primaryAdminLogin),
	}
}

func (service *UserService) ListWithTaskCounts() ([]db.UserWithTaskCount, error) {
	return service.users.ListWithTaskCounts()
}

// Detail aggregates the user with their team projects and assigned tasks.
// This is a read-side join computed per request, nothing is stored.
func (service *UserService) Detail(userID uint) (models.User, []models.Project, []models.Task, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, nil, nil, err
	}

	projects, err := service.projects.ListByTeamMember(userID)
	if err != nil {
		return models.User{}, nil, nil, err
	}

	tasks, err := service.tasks.ListByAssignee(userID)
	if err != nil {
		return models.User{}, nil, nil, err
	}

	return user, projects, tasks, nil
}

func (service *UserService) ChangeRole(userID uint, role string) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, err
	}

	if service.isPrimaryAdmin(user.Login) && role != models.RoleAdmin {
		return models.User{}, ErrPrimaryAdminImmutable
	}

	user.Rola = role
	if err := service.users.Save(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (service *UserService) DeleteUser(userID uint) error {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return err
	}

	if service.isPrimaryAdmin(user.Login) {
		return ErrPrimaryAdminImmutable
	}

	return service.users.Delete(userID)
}

func (service *UserService) isPrimaryAdmin(login string) bool {
	return service.primaryAdminLogin != "" && normalizeLogin(login) == service.primaryAdminLogin
}
