package models

import "time"

const (
	MilestoneStatusTodo  = "todo"
	MilestoneStatusDoing = "doing"
	MilestoneStatusDone  = "done"
)

// Milestone always belongs to a project through StoryID. The field keeps its
// historical name: milestones grew out of user stories and the API contract
// still calls the project reference "story".
type Milestone struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Name          string     `gorm:"not null" json:"name"`
	Description   string     `gorm:"not null;default:''" json:"description"`
	Priority      string     `gorm:"not null;default:średni" json:"priority"`
	Status        string     `gorm:"not null;default:todo" json:"status"`
	EstimatedTime int        `gorm:"not null;default:0" json:"estimatedTime"`
	AssignedToID  *uint      `gorm:"index" json:"assignedToId"`
	StoryID       uint       `gorm:"not null;index" json:"story"`
	StartDate     *time.Time `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func IsValidMilestoneStatus(status string) bool {
	switch status {
	case MilestoneStatusTodo, MilestoneStatusDoing, MilestoneStatusDone:
		return true
	default:
		return false
	}
}
