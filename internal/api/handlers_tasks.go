package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/mpradela/managme/internal/models"
	"github.com/mpradela/managme/internal/services"
)

func (handler *Handler) ListTasks(c *fiber.Ctx) error {
	var projectFilter *uint
	if raw := c.Query("projectId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return handler.apiError(c, fiber.StatusBadRequest, "tasks.validation_error")
		}
		projectID := uint(parsed)
		projectFilter = &projectID
	}

	tasks, err := handler.taskService.List(projectFilter)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}

	views, err := handler.buildTaskViews(tasks)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}
	return c.JSON(views)
}

// GetTask returns the task together with its attached milestones, resolved
// through the id list in stored order.
func (handler *Handler) GetTask(c *fiber.Ctx) error {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return handler.apiError(c, fiber.StatusNotFound, "tasks.not_found")
	}

	task, err := handler.taskService.FindByID(taskID)
	if err != nil {
		return handler.storageError(c, err, "tasks.not_found")
	}

	view, err := handler.buildTaskView(task)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}

	milestones, err := handler.taskService.Milestones(task)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}
	milestoneViews, err := handler.buildMilestoneViews(milestones)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}

	return c.JSON(taskDetailView{taskView: view, Milestones: milestoneViews})
}

func (handler *Handler) CreateTask(c *fiber.Ctx) error {
	var input taskInput
	if err := c.BodyParser(&input); err != nil || !input.validate() {
		return handler.apiError(c, fiber.StatusBadRequest, "tasks.validation_error")
	}

	task := models.Task{
		Title:        input.Title,
		Description:  input.Description,
		Status:       input.Status,
		Priority:     input.Priority,
		Deadline:     input.Deadline,
		ProjectID:    input.ProjectID,
		AssignedToID: input.AssignedToID,
		MilestoneIDs: []uint{},
	}
	if err := handler.taskService.Create(&task); err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			return handler.apiError(c, fiber.StatusBadRequest, "projects.not_found")
		}
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}

	view, err := handler.buildTaskView(task)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

func (handler *Handler) UpdateTask(c *fiber.Ctx) error {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return handler.apiError(c, fiber.StatusNotFound, "tasks.not_found")
	}

	task, err := handler.taskService.FindByID(taskID)
	if err != nil {
		return handler.storageError(c, err, "tasks.not_found")
	}

	var input taskInput
	if err := c.BodyParser(&input); err != nil || !input.validate() {
		return handler.apiError(c, fiber.StatusBadRequest, "tasks.validation_error")
	}

	task.Title = input.Title
	task.Description = input.Description
	task.Status = input.Status
	task.Priority = input.Priority
	task.Deadline = input.Deadline
	task.ProjectID = input.ProjectID
	task.AssignedToID = input.AssignedToID
	if err := handler.taskService.Save(&task); err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			return handler.apiError(c, fiber.StatusBadRequest, "projects.not_found")
		}
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}

	view, err := handler.buildTaskView(task)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}
	return c.JSON(view)
}

func (handler *Handler) DeleteTask(c *fiber.Ctx) error {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return handler.apiError(c, fiber.StatusNotFound, "tasks.not_found")
	}

	if _, err := handler.taskService.FindByID(taskID); err != nil {
		return handler.storageError(c, err, "tasks.not_found")
	}

	if err := handler.taskService.Delete(taskID); err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
