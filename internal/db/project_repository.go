package db

import (
	"github.com/mpradela/managme/internal/models"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	database *gorm.DB
}

func NewProjectRepository(database *gorm.DB) *ProjectRepository {
	return &ProjectRepository{database: database}
}

func (repo *ProjectRepository) List() ([]models.Project, error) {
	projects := make([]models.Project, 0)
	if err := repo.database.Order("id").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (repo *ProjectRepository) FindByID(projectID uint) (models.Project, error) {
	var project models.Project
	if err := repo.database.First(&project, projectID).Error; err != nil {
		return models.Project{}, err
	}
	return project, nil
}

func (repo *ProjectRepository) Exists(projectID uint) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Project{}).Where("id = ?", projectID).Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *ProjectRepository) Create(project *models.Project) error {
	return repo.database.Create(project).Error
}

func (repo *ProjectRepository) Save(project *models.Project) error {
	return repo.database.Save(project).Error
}

// DeleteCascade removes the project together with its tasks and milestones
// in one transaction. Milestones go first so a failure never leaves them
// pointing at a deleted project.
func (repo *ProjectRepository) DeleteCascade(projectID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("story_id = ?", projectID).Delete(&models.Milestone{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", projectID).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, projectID).Error
	})
}

func (repo *ProjectRepository) ListByIDs(projectIDs []uint) ([]models.Project, error) {
	if len(projectIDs) == 0 {
		return []models.Project{}, nil
	}
	projects := make([]models.Project, 0, len(projectIDs))
	if err := repo.database.Where("id IN ?", projectIDs).Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// ListByTeamMember relies on SQLite's json_each to unpack the serialized
// team_ids column.
func (repo *ProjectRepository) ListByTeamMember(userID uint) ([]models.Project, error) {
	projects := make([]models.Project, 0)
	if err := repo.database.
		Where("EXISTS (SELECT 1 FROM json_each(projects.team_ids) WHERE json_each.value = ?)", userID).
		Order("id").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}
