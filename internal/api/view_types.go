package api

import "github.com/mpradela/managme/internal/models"

// Views flatten storage records into the wire shape the client expects:
// id lists are replaced (or accompanied) by small embedded references.

type userRef struct {
	ID       uint   `json:"id"`
	Imie     string `json:"imie"`
	Nazwisko string `json:"nazwisko"`
}

type projectRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type projectView struct {
	models.Project
	Team []userRef `json:"team"`
}

type taskView struct {
	models.Task
	AssignedTo *userRef    `json:"assignedTo"`
	Project    *projectRef `json:"project"`
}

type taskDetailView struct {
	taskView
	Milestones []milestoneView `json:"milestones"`
}

// Story shadows the embedded numeric reference: the client receives the
// project ref object under "story", the way the previous API populated it.
type milestoneView struct {
	models.Milestone
	AssignedTo *userRef    `json:"assignedTo"`
	Story      *projectRef `json:"story"`
}

type userDetailView struct {
	models.User
	Projects []projectView `json:"projects"`
	Tasks    []taskView    `json:"tasks"`
}
