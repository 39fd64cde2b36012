package api

import (
	"net/http"
	"testing"

	"github.com/mpradela/managme/internal/models"
)

func TestAssignMilestoneStartsClock(t *testing.T) {
	t.Parallel()

	app, database, _ := newTestApp(t)
	worker := createTestUser(t, database, "worker@example.com", "sekret123", models.RoleDeveloper)
	token := loginAndToken(t, app, "worker@example.com", "sekret123")

	project := models.Project{Name: "Host", TeamIDs: []uint{}}
	if err := database.Create(&project).Error; err != nil {
		t.Fatalf("create project: %v", err)
	}
	milestone := models.Milestone{Name: "Waiting", StoryID: project.ID, Status: models.MilestoneStatusTodo}
	if err := database.Create(&milestone).Error; err != nil {
		t.Fatalf("create milestone: %v", err)
	}

	response := doJSONRequest(t, app, http.MethodPost, "/api/milestones/"+itoa(milestone.ID)+"/assign", map[string]interface{}{
		"userId": worker.ID,
	}, token)
	requireStatus(t, response, http.StatusOK)
	response.Body.Close()

	var updated models.Milestone
	if err := database.First(&updated, milestone.ID).Error; err != nil {
		t.Fatalf("load milestone: %v", err)
	}
	if updated.Status != models.MilestoneStatusDoing {
		t.Fatalf("status = %q, want %q", updated.Status, models.MilestoneStatusDoing)
	}
	if updated.AssignedToID == nil || *updated.AssignedToID != worker.ID {
		t.Fatalf("assignee = %v, want %d", updated.AssignedToID, worker.ID)
	}
	if updated.StartDate == nil {
		t.Fatal("start date should be stamped on assign")
	}
}

func TestAssignMilestoneRejectsUnknownUser(t *testing.T) {
	t.Parallel()

	app, database, _ := newTestApp(t)
	createTestUser(t, database, "worker@example.com", "sekret123", models.RoleDeveloper)
	token := loginAndToken(t, app, "worker@example.com", "sekret123")

	project := models.Project{Name: "Host", TeamIDs: []uint{}}
	if err := database.Create(&project).Error; err != nil {
		t.Fatalf("create project: %v", err)
	}
	milestone := models.Milestone{Name: "Waiting", StoryID: project.ID}
	if err := database.Create(&milestone).Error; err != nil {
		t.Fatalf("create milestone: %v", err)
	}

	response := doJSONRequest(t, app, http.MethodPost, "/api/milestones/"+itoa(milestone.ID)+"/assign", map[string]interface{}{
		"userId": 4242,
	}, token)
	requireStatus(t, response, http.StatusNotFound)
	response.Body.Close()
}

func TestCompleteMilestoneStampsEndDate(t *testing.T) {
	t.Parallel()

	app, database, _ := newTestApp(t)
	createTestUser(t, database, "worker@example.com", "sekret123", models.RoleDeveloper)
	token := loginAndToken(t, app, "worker@example.com", "sekret123")

	project := models.Project{Name: "Host", TeamIDs: []uint{}}
	if err := database.Create(&project).Error; err != nil {
		t.Fatalf("create project: %v", err)
	}
	milestone := models.Milestone{Name: "Almost done", StoryID: project.ID, Status: models.MilestoneStatusDoing}
	if err := database.Create(&milestone).Error; err != nil {
		t.Fatalf("create milestone: %v", err)
	}

	response := doJSONRequest(t, app, http.MethodPost, "/api/milestones/"+itoa(milestone.ID)+"/complete", nil, token)
	requireStatus(t, response, http.StatusOK)
	response.Body.Close()

	var updated models.Milestone
	if err := database.First(&updated, milestone.ID).Error; err != nil {
		t.Fatalf("load milestone: %v", err)
	}
	if updated.Status != models.MilestoneStatusDone {
		t.Fatalf("status = %q, want %q", updated.Status, models.MilestoneStatusDone)
	}
	if updated.EndDate == nil {
		t.Fatal("end date should be stamped on complete")
	}
}

func TestUpdateMilestoneLeavingDoneClearsEndDate(t *testing.T) {
	t.Parallel()

	app, database, _ := newTestApp(t)
	createTestUser(t, database, "worker@example.com", "sekret123", models.RoleDeveloper)
	token := loginAndToken(t, app, "worker@example.com", "sekret123")

	project := models.Project{Name: "Host", TeamIDs: []uint{}}
	if err := database.Create(&project).Error; err != nil {
		t.Fatalf("create project: %v", err)
	}
	milestone := models.Milestone{Name: "Reopened", StoryID: project.ID, Status: models.MilestoneStatusDoing}
	if err := database.Create(&milestone).Error; err != nil {
		t.Fatalf("create milestone: %v", err)
	}

	response := doJSONRequest(t, app, http.MethodPost, "/api/milestones/"+itoa(milestone.ID)+"/complete", nil, token)
	requireStatus(t, response, http.StatusOK)
	response.Body.Close()

	response = doJSONRequest(t, app, http.MethodPut, "/api/milestones/"+itoa(milestone.ID), map[string]interface{}{
		"name":   "Reopened",
		"status": models.MilestoneStatusDoing,
		"story":  project.ID,
	}, token)
	requireStatus(t, response, http.StatusOK)
	response.Body.Close()

	var updated models.Milestone
	if err := database.First(&updated, milestone.ID).Error; err != nil {
		t.Fatalf("load milestone: %v", err)
	}
	if updated.Status != models.MilestoneStatusDoing {
		t.Fatalf("status = %q, want %q", updated.Status, models.MilestoneStatusDoing)
	}
	if updated.EndDate != nil {
		t.Fatal("end date should be cleared when leaving done")
	}
}

func TestCreateMilestoneRequiresExistingProject(t *testing.T) {
	t.Parallel()

	app, database, _ := newTestApp(t)
	createTestUser(t, database, "worker@example.com", "sekret123", models.RoleDeveloper)
	token := loginAndToken(t, app, "worker@example.com", "sekret123")

	response := doJSONRequest(t, app, http.MethodPost, "/api/milestones", map[string]interface{}{
		"name":  "Floating",
		"story": 4242,
	}, token)
	requireStatus(t, response, http.StatusBadRequest)
	response.Body.Close()
}

func TestUpdateMilestoneRejectsUnknownProject(t *testing.T) {
	t.Parallel()

	app, database, _ := newTestApp(t)
	createTestUser(t, database, "worker@example.com", "sekret123", models.RoleDeveloper)
	token := loginAndToken(t, app, "worker@example.com", "sekret123")

	project := models.Project{Name: "Host", TeamIDs: []uint{}}
	if err := database.Create(&project).Error; err != nil {
		t.Fatalf("create project: %v", err)
	}
	milestone := models.Milestone{Name: "Anchored", StoryID: project.ID}
	if err := database.Create(&milestone).Error; err != nil {
		t.Fatalf("create milestone: %v", err)
	}

	response := doJSONRequest(t, app, http.MethodPut, "/api/milestones/"+itoa(milestone.ID), map[string]interface{}{
		"name":  "Anchored",
		"story": 4242,
	}, token)
	requireStatus(t, response, http.StatusBadRequest)
	response.Body.Close()

	var updated models.Milestone
	if err := database.First(&updated, milestone.ID).Error; err != nil {
		t.Fatalf("load milestone: %v", err)
	}
	if updated.StoryID != project.ID {
		t.Fatalf("story = %d, want %d", updated.StoryID, project.ID)
	}
}

func TestMilestoneLifecycleFlow(t *testing.T) {
	t.Parallel()

	app, database, _ := newTestApp(t)
	worker := createTestUser(t, database, "worker@example.com", "sekret123", models.RoleDeveloper)
	token := loginAndToken(t, app, "worker@example.com", "sekret123")

	project := models.Project{Name: "Flow", TeamIDs: []uint{}}
	if err := database.Create(&project).Error; err != nil {
		t.Fatalf("create project: %v", err)
	}

	response := doJSONRequest(t, app, http.MethodPost, "/api/milestones", map[string]interface{}{
		"name":          "Full cycle",
		"story":         project.ID,
		"estimatedTime": 8,
	}, token)
	requireStatus(t, response, http.StatusCreated)

	var created struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
	}
	decodeJSONBody(t, response, &created)
	response.Body.Close()
	if created.Status != models.MilestoneStatusTodo {
		t.Fatalf("created status = %q, want %q", created.Status, models.MilestoneStatusTodo)
	}

	response = doJSONRequest(t, app, http.MethodPost, "/api/milestones/"+itoa(created.ID)+"/assign", map[string]interface{}{
		"userId": worker.ID,
	}, token)
	requireStatus(t, response, http.StatusOK)
	response.Body.Close()

	response = doJSONRequest(t, app, http.MethodPost, "/api/milestones/"+itoa(created.ID)+"/complete", nil, token)
	requireStatus(t, response, http.StatusOK)
	response.Body.Close()

	var final models.Milestone
	if err := database.First(&final, created.ID).Error; err != nil {
		t.Fatalf("load milestone: %v", err)
	}
	if final.Status != models.MilestoneStatusDone {
		t.Fatalf("final status = %q, want %q", final.Status, models.MilestoneStatusDone)
	}
	if final.StartDate == nil || final.EndDate == nil {
		t.Fatal("both dates should be stamped after the full flow")
	}
	if final.AssignedToID == nil || *final.AssignedToID != worker.ID {
		t.Fatalf("final assignee = %v, want %d", final.AssignedToID, worker.ID)
	}
}
