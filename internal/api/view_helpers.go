package api

import "github.com/mpradela/managme/internal/models"

func newUserRef(user models.User) userRef {
	return userRef{ID: user.ID, Imie: user.Imie, Nazwisko: user.Nazwisko}
}

func newProjectRef(project models.Project) projectRef {
	return projectRef{ID: project.ID, Name: project.Name}
}

// userRefsByID loads the referenced users in one query and indexes them.
// Dangling ids simply have no entry.
func (handler *Handler) userRefsByID(userIDs []uint) (map[uint]userRef, error) {
	users, err := handler.repositories.Users.ListByIDs(userIDs)
	if err != nil {
		return nil, err
	}
	refs := make(map[uint]userRef, len(users))
	for _, user := range users {
		refs[user.ID] = newUserRef(user)
	}
	return refs, nil
}

func (handler *Handler) projectRefsByID(projectIDs []uint) (map[uint]projectRef, error) {
	projects, err := handler.repositories.Projects.ListByIDs(projectIDs)
	if err != nil {
		return nil, err
	}
	refs := make(map[uint]projectRef, len(projects))
	for _, project := range projects {
		refs[project.ID] = newProjectRef(project)
	}
	return refs, nil
}

func (handler *Handler) buildProjectView(project models.Project) (projectView, error) {
	members, err := handler.projectService.TeamMembers(project.TeamIDs)
	if err != nil {
		return projectView{}, err
	}
	team := make([]userRef, 0, len(members))
	for _, member := range members {
		team = append(team, newUserRef(member))
	}
	return projectView{Project: project, Team: team}, nil
}

func (handler *Handler) buildProjectViews(projects []models.Project) ([]projectView, error) {
	memberIDs := make([]uint, 0)
	for _, project := range projects {
		memberIDs = append(memberIDs, project.TeamIDs...)
	}
	userRefs, err := handler.userRefsByID(memberIDs)
	if err != nil {
		return nil, err
	}

	views := make([]projectView, 0, len(projects))
	for _, project := range projects {
		team := make([]userRef, 0, len(project.TeamIDs))
		for _, memberID := range project.TeamIDs {
			if ref, ok := userRefs[memberID]; ok {
				team = append(team, ref)
			}
		}
		views = append(views, projectView{Project: project, Team: team})
	}
	return views, nil
}

func (handler *Handler) buildTaskViews(tasks []models.Task) ([]taskView, error) {
	userIDs := make([]uint, 0)
	projectIDs := make([]uint, 0, len(tasks))
	for _, task := range tasks {
		if task.AssignedToID != nil {
			userIDs = append(userIDs, *task.AssignedToID)
		}
		projectIDs = append(projectIDs, task.ProjectID)
	}

	userRefs, err := handler.userRefsByID(userIDs)
	if err != nil {
		return nil, err
	}
	projectRefs, err := handler.projectRefsByID(projectIDs)
	if err != nil {
		return nil, err
	}

	views := make([]taskView, 0, len(tasks))
	for _, task := range tasks {
		views = append(views, composeTaskView(task, userRefs, projectRefs))
	}
	return views, nil
}

func (handler *Handler) buildTaskView(task models.Task) (taskView, error) {
	views, err := handler.buildTaskViews([]models.Task{task})
	if err != nil {
		return taskView{}, err
	}
	return views[0], nil
}

func (handler *Handler) buildMilestoneViews(milestones []models.Milestone) ([]milestoneView, error) {
	userIDs := make([]uint, 0)
	projectIDs := make([]uint, 0, len(milestones))
	for _, milestone := range milestones {
		if milestone.AssignedToID != nil {
			userIDs = append(userIDs, *milestone.AssignedToID)
		}
		projectIDs = append(projectIDs, milestone.StoryID)
	}

	userRefs, err := handler.userRefsByID(userIDs)
	if err != nil {
		return nil, err
	}
	projectRefs, err := handler.projectRefsByID(projectIDs)
	if err != nil {
		return nil, err
	}

	views := make([]milestoneView, 0, len(milestones))
	for _, milestone := range milestones {
		views = append(views, composeMilestoneView(milestone, userRefs, projectRefs))
	}
	return views, nil
}

func (handler *Handler) buildMilestoneView(milestone models.Milestone) (milestoneView, error) {
	views, err := handler.buildMilestoneViews([]models.Milestone{milestone})
	if err != nil {
		return milestoneView{}, err
	}
	return views[0], nil
}

func composeTaskView(task models.Task, userRefs map[uint]userRef, projectRefs map[uint]projectRef) taskView {
	view := taskView{Task: task}
	if task.AssignedToID != nil {
		if ref, ok := userRefs[*task.AssignedToID]; ok {
			view.AssignedTo = &ref
		}
	}
	if ref, ok := projectRefs[task.ProjectID]; ok {
		view.Project = &ref
	}
	return view
}

func composeMilestoneView(milestone models.Milestone, userRefs map[uint]userRef, projectRefs map[uint]projectRef) milestoneView {
	view := milestoneView{Milestone: milestone}
	if milestone.AssignedToID != nil {
		if ref, ok := userRefs[*milestone.AssignedToID]; ok {
			view.AssignedTo = &ref
		}
	}
	if ref, ok := projectRefs[milestone.StoryID]; ok {
		view.Story = &ref
	}
	return view
}
