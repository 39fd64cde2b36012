package services

import (
	"time"

	"github.com/mpradela/managme/internal/models"
)

type MilestoneStore interface {
	List() ([]models.Milestone, error)
	FindByID(milestoneID uint) (models.Milestone, error)
	Create(milestone *models.Milestone) error
	Save(milestone *models.Milestone) error
	Delete(milestoneID uint) error
}

type MilestoneService struct {
	milestones MilestoneStore
}

func NewMilestoneService(milestones MilestoneStore) *MilestoneService {
	return &MilestoneService{milestones: milestones}
}

func (service *MilestoneService) List() ([]models.Milestone, error) {
	return service.milestones.List()
}

func (service *MilestoneService) FindByID(milestoneID uint) (models.Milestone, error) {
	return service.milestones.FindByID(milestoneID)
}

func (service *MilestoneService) Create(milestone *models.Milestone) error {
	return service.milestones.Create(milestone)
}

func (service *MilestoneService) Save(milestone *models.Milestone) error {
	return service.milestones.Save(milestone)
}

func (service *MilestoneService) Delete(milestoneID uint) error {
	return service.milestones.Delete(milestoneID)
}

// Assign puts the milestone in progress under the given user. Taking a
// milestone is what starts its clock.
func (service *MilestoneService) Assign(milestoneID uint, userID uint, now time.Time) (models.Milestone, error) {
	milestone, err := service.milestones.FindByID(milestoneID)
	if err != nil {
		return models.Milestone{}, err
	}

	milestone.AssignedToID = &userID
	milestone.Status = models.MilestoneStatusDoing
	milestone.StartDate = &now
	if err := service.milestones.Save(&milestone); err != nil {
		return models.Milestone{}, err
	}
	return milestone, nil
}

func (service *MilestoneService) Complete(milestoneID uint, now time.Time) (models.Milestone, error) {
	milestone, err := service.milestones.FindByID(milestoneID)
	if err != nil {
		return models.Milestone{}, err
	}

	milestone.Status = models.MilestoneStatusDone
	milestone.EndDate = &now
	if err := service.milestones.Save(&milestone); err != nil {
		return models.Milestone{}, err
	}
	return milestone, nil
}

// ApplyStatusTransition keeps EndDate consistent with the done status:
// entering done stamps it, leaving done clears it.
func ApplyStatusTransition(previous models.Milestone, updated *models.Milestone, now time.Time) {
	switch {
	case updated.Status == models.MilestoneStatusDone && previous.Status != models.MilestoneStatusDone:
		if updated.EndDate == nil {
			updated.EndDate = &now
		}
	case updated.Status != models.MilestoneStatusDone && previous.Status == models.MilestoneStatusDone:
		updated.EndDate = nil
	}
}
