package api

import (
	"net/http"
	"testing"

	"github.com/mpradela/managme/internal/models"
)

func TestListUsersIncludesTaskCounts(t *testing.T) {
	t.Parallel()

	app, database, _ := newTestApp(t)
	admin := createTestUser(t, database, "admin@example.com", "sekret123", models.RoleAdmin)
	worker := createTestUser(t, database, "worker@example.com", "sekret123", models.RoleDeveloper)
	token := loginAndToken(t, app, "admin@example.com", "sekret123")

	project := models.Project{Name: "Counted", TeamIDs: []uint{}}
	if err := database.Create(&project).Error; err != nil {
		t.Fatalf("create project: %v", err)
	}
	for i := 0; i < 2; i++ {
		task := models.Task{Title: "Counted task", ProjectID: project.ID, AssignedToID: &worker.ID, MilestoneIDs: []uint{}}
		if err := database.Create(&task).Error; err != nil {
			t.Fatalf("create task: %v", err)
		}
	}

	response := doJSONRequest(t, app, http.MethodGet, "/api/users", nil, token)
	requireStatus(t, response, http.StatusOK)

	var users []struct {
		ID        uint  `json:"id"`
		TaskCount int64 `json:"taskCount"`
	}
	decodeJSONBody(t, response, &users)
	response.Body.Close()

	counts := map[uint]int64{}
	for _, user := range users {
		counts[user.ID] = user.TaskCount
	}
	if counts[worker.ID] != 2 {
		t.Fatalf("worker taskCount = %d, want 2", counts[worker.ID])
	}
	if counts[admin.ID] != 0 {
		t.Fatalf("admin taskCount = %d, want 0", counts[admin.ID])
	}
}

func TestGetUserDetailAggregatesProjectsAndTasks(t *testing.T) {
	t.Parallel()

	app, database, _ := newTestApp(t)
	createTestUser(t, database, "admin@example.com", "sekret123", models.RoleAdmin)
	member := createTestUser(t, database, "member@example.com", "sekret123", models.RoleDeveloper)
	token := loginAndToken(t, app, "admin@example.com", "sekret123")

	project := models.Project{Name: "Team project", TeamIDs: []uint{member.ID}}
	if err := database.Create(&project).Error; err != nil {
		t.Fatalf("create project: %v", err)
	}
	task := models.Task{Title: "Assigned task", ProjectID: project.ID, AssignedToID: &member.ID, MilestoneIDs: []uint{}}
	if err := database.Create(&task).Error; err != nil {
		t.Fatalf("create task: %v", err)
	}

	response := doJSONRequest(t, app, http.MethodGet, "/api/users/"+itoa(member.ID), nil, token)
	requireStatus(t, response, http.StatusOK)

	var detail struct {
		ID       uint `json:"id"`
		Projects []struct {
			ID uint `json:"id"`
		} `json:"projects"`
		Tasks []struct {
			ID uint `json:"id"`
		} `json:"tasks"`
	}
	decodeJSONBody(t, response, &detail)
	response.Body.Close()

	if detail.ID != member.ID {
		t.Fatalf("detail id = %d, want %d", detail.ID, member.ID)
	}
	if len(detail.Projects) != 1 || detail.Projects[0].ID != project.ID {
		t.Fatalf("detail projects = %+v, want project %d", detail.Projects, project.ID)
	}
	if len(detail.Tasks) != 1 || detail.Tasks[0].ID != task.ID {
		t.Fatalf("detail tasks = %+v, want task %d", detail.Tasks, task.ID)
	}
}

func TestChangeUserRole(t *testing.T) {
	t.Parallel()

	app, database, _ := newTestApp(t)
	createTestUser(t, database, "admin@example.com", "sekret123", models.RoleAdmin)
	target := createTestUser(t, database, "promotee@example.com", "sekret123", models.RoleReadonly)
	token := loginAndToken(t, app, "admin@example.com", "sekret123")

	response := doJSONRequest(t, app, http.MethodPut, "/api/users/"+itoa(target.ID)+"/role", map[string]string{
		"rola": models.RoleDevops,
	}, token)
	requireStatus(t, response, http.StatusOK)
	response.Body.Close()

	var updated models.User
	if err := database.First(&updated, target.ID).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if updated.Rola != models.RoleDevops {
		t.Fatalf("role = %q, want %q", updated.Rola, models.RoleDevops)
	}

	response = doJSONRequest(t, app, http.MethodPut, "/api/users/"+itoa(target.ID)+"/role", map[string]string{
		"rola": "krol",
	}, token)
	requireStatus(t, response, http.StatusBadRequest)
	response.Body.Close()
}

func TestPrimaryAdminCannotBeDemotedOrDeleted(t *testing.T) {
	t.Parallel()

	app, database, _ := newTestApp(t)
	primary := createTestUser(t, database, testPrimaryAdminLogin, "sekret123", models.RoleAdmin)
	createTestUser(t, database, "admin@example.com", "sekret123", models.RoleAdmin)
	token := loginAndToken(t, app, "admin@example.com", "sekret123")

	response := doJSONRequest(t, app, http.MethodPut, "/api/users/"+itoa(primary.ID)+"/role", map[string]string{
		"rola": models.RoleReadonly,
	}, token)
	requireStatus(t, response, http.StatusBadRequest)
	response.Body.Close()

	response = doJSONRequest(t, app, http.MethodDelete, "/api/users/"+itoa(primary.ID), nil, token)
	requireStatus(t, response, http.StatusBadRequest)
	response.Body.Close()

	var untouched models.User
	if err := database.First(&untouched, primary.ID).Error; err != nil {
		t.Fatalf("primary admin should still exist: %v", err)
	}
	if untouched.Rola != models.RoleAdmin {
		t.Fatalf("primary admin role = %q, want %q", untouched.Rola, models.RoleAdmin)
	}
}

func TestDeleteUser(t *testing.T) {
	t.Parallel()

	app, database, _ := newTestApp(t)
	createTestUser(t, database, "admin@example.com", "sekret123", models.RoleAdmin)
	target := createTestUser(t, database, "leaver@example.com", "sekret123", models.RoleDeveloper)
	token := loginAndToken(t, app, "admin@example.com", "sekret123")

	response := doJSONRequest(t, app, http.MethodDelete, "/api/users/"+itoa(target.ID), nil, token)
	requireStatus(t, response, http.StatusOK)
	response.Body.Close()

	var count int64
	if err := database.Model(&models.User{}).Where("id = ?", target.ID).Count(&count).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 0 {
		t.Fatal("user should be gone")
	}
}
