package models

import "time"

const (
	ProjectStatusPlanned    = "planowany"
	ProjectStatusInProgress = "w trakcie"
	ProjectStatusFinished   = "zakończony"
)

type Project struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"not null" json:"name"`
	Description string     `gorm:"not null" json:"description"`
	Deadline    *time.Time `json:"deadline"`
	Status      string     `gorm:"not null;default:planowany" json:"status"`
	TeamIDs     []uint     `gorm:"serializer:json" json:"teamIds"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func IsValidProjectStatus(status string) bool {
	switch status {
	case ProjectStatusPlanned, ProjectStatusInProgress, ProjectStatusFinished:
		return true
	default:
		return false
	}
}
