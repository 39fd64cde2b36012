package db

import (
	"github.com/mpradela/managme/internal/models"
	"gorm.io/gorm"
)

type MilestoneRepository struct {
	database *gorm.DB
}

func NewMilestoneRepository(database *gorm.DB) *MilestoneRepository {
	return &MilestoneRepository{database: database}
}

func (repo *MilestoneRepository) List() ([]models.Milestone, error) {
	milestones := make([]models.Milestone, 0)
	if err := repo.database.Order("id").Find(&milestones).Error; err != nil {
		return nil, err
	}
	return milestones, nil
}

func (repo *MilestoneRepository) FindByID(milestoneID uint) (models.Milestone, error) {
	var milestone models.Milestone
	if err := repo.database.First(&milestone, milestoneID).Error; err != nil {
		return models.Milestone{}, err
	}
	return milestone, nil
}

func (repo *MilestoneRepository) Create(milestone *models.Milestone) error {
	return repo.database.Create(milestone).Error
}

func (repo *MilestoneRepository) Save(milestone *models.Milestone) error {
	return repo.database.Save(milestone).Error
}

func (repo *MilestoneRepository) Delete(milestoneID uint) error {
	return repo.database.Delete(&models.Milestone{}, milestoneID).Error
}

// ListByIDs returns milestones in the order of the given id list, skipping
// ids that no longer resolve.
func (repo *MilestoneRepository) ListByIDs(milestoneIDs []uint) ([]models.Milestone, error) {
	if len(milestoneIDs) == 0 {
		return []models.Milestone{}, nil
	}

	rows := make([]models.Milestone, 0, len(milestoneIDs))
	if err := repo.database.Where("id IN ?", milestoneIDs).Find(&rows).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]models.Milestone, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}

	ordered := make([]models.Milestone, 0, len(rows))
	for _, milestoneID := range milestoneIDs {
		if milestone, ok := byID[milestoneID]; ok {
			ordered = append(ordered, milestone)
		}
	}
	return ordered, nil
}
