package models

import "time"

const (
	TaskStatusTodo       = "do zrobienia"
	TaskStatusInProgress = "w trakcie"
	TaskStatusDone       = "zakończone"
)

const (
	PriorityLow    = "niski"
	PriorityMedium = "średni"
	PriorityHigh   = "wysoki"
)

// Task belongs to exactly one project. MilestoneIDs keeps the ordered list
// of milestones attached through the task-scoped endpoints; milestones
// themselves stay valid records when the task goes away.
type Task struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Title        string     `gorm:"not null" json:"title"`
	Description  string     `gorm:"not null;default:''" json:"description"`
	Status       string     `gorm:"not null;default:'do zrobienia'" json:"status"`
	Priority     string     `gorm:"not null;default:średni" json:"priority"`
	Deadline     *time.Time `json:"deadline"`
	ProjectID    uint       `gorm:"not null;index" json:"projectId"`
	AssignedToID *uint      `gorm:"index" json:"assignedToId"`
	MilestoneIDs []uint     `gorm:"serializer:json" json:"milestoneIds"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func IsValidTaskStatus(status string) bool {
	switch status {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	default:
		return false
	}
}

func IsValidPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}
