package db

import (
	"github.com/mpradela/managme/internal/models"
	"gorm.io/gorm"
)

type TaskRepository struct {
	database *gorm.DB
}

func NewTaskRepository(database *gorm.DB) *TaskRepository {
	return &TaskRepository{database: database}
}

func (repo *TaskRepository) List(projectID *uint) ([]models.Task, error) {
	query := repo.database.Order("id")
	if projectID != nil {
		query = query.Where("project_id = ?", *projectID)
	}

	tasks := make([]models.Task, 0)
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (repo *TaskRepository) ListByAssignee(userID uint) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	if err := repo.database.Where("assigned_to_id = ?", userID).Order("id").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (repo *TaskRepository) FindByID(taskID uint) (models.Task, error) {
	var task models.Task
	if err := repo.database.First(&task, taskID).Error; err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (repo *TaskRepository) Create(task *models.Task) error {
	return repo.database.Create(task).Error
}

func (repo *TaskRepository) Save(task *models.Task) error {
	return repo.database.Save(task).Error
}

func (repo *TaskRepository) Delete(taskID uint) error {
	return repo.database.Delete(&models.Task{}, taskID).Error
}
