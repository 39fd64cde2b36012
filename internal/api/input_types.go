package api

import "time"

type registerInput struct {
	Imie     string `json:"imie"`
	Nazwisko string `json:"nazwisko"`
	Login    string `json:"login"`
	Password string `json:"password"`
}

type loginInput struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type forgotPasswordInput struct {
	Login string `json:"login"`
}

type resetPasswordInput struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

type profileInput struct {
	Imie     string `json:"imie"`
	Nazwisko string `json:"nazwisko"`
}

type settingsInput struct {
	Language string `json:"language"`
}

type changeRoleInput struct {
	Rola string `json:"rola"`
}

type projectInput struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Deadline    *time.Time `json:"deadline"`
	Status      string     `json:"status"`
	TeamIDs     []uint     `json:"teamIds"`
}

type taskInput struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Status       string     `json:"status"`
	Priority     string     `json:"priority"`
	Deadline     *time.Time `json:"deadline"`
	ProjectID    uint       `json:"projectId"`
	AssignedToID *uint      `json:"assignedToId"`
}

type milestoneInput struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Priority      string `json:"priority"`
	Status        string `json:"status"`
	EstimatedTime int    `json:"estimatedTime"`
	AssignedToID  *uint  `json:"assignedToId"`
	StoryID       uint   `json:"story"`
}

type assignMilestoneInput struct {
	UserID uint `json:"userId"`
}
