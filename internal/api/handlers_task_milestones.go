package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mpradela/managme/internal/models"
)

func (handler *Handler) ListTaskMilestones(c *fiber.Ctx) error {
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return handler.apiError(c, fiber.StatusNotFound, "tasks.not_found")
	}

	task, err := handler.taskService.FindByID(taskID)
	if err != nil {
		return handler.storageError(c, err, "tasks.not_found")
	}

	milestones, err := handler.taskService.Milestones(task)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}

	views, err := handler.buildMilestoneViews(milestones)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}
	return c.JSON(views)
}

// CreateTaskMilestone attaches a new milestone to the task. The project
// reference always comes from the task, not from the request body.
func (handler *Handler) CreateTaskMilestone(c *fiber.Ctx) error {
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return handler.apiError(c, fiber.StatusNotFound, "tasks.not_found")
	}

	var input milestoneInput
	if err := c.BodyParser(&input); err != nil || !input.validate(false) {
		return handler.apiError(c, fiber.StatusBadRequest, "milestones.validation_error")
	}

	milestone := models.Milestone{
		Name:          input.Name,
		Description:   input.Description,
		Priority:      input.Priority,
		Status:        input.Status,
		EstimatedTime: input.EstimatedTime,
		AssignedToID:  input.AssignedToID,
	}
	if err := handler.taskService.CreateTaskMilestone(taskID, &milestone); err != nil {
		return handler.storageError(c, err, "tasks.not_found")
	}

	view, err := handler.buildMilestoneView(milestone)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

func (handler *Handler) DeleteTaskMilestone(c *fiber.Ctx) error {
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return handler.apiError(c, fiber.StatusNotFound, "tasks.not_found")
	}
	milestoneID, ok := parseIDParam(c, "milestoneId")
	if !ok {
		return handler.apiError(c, fiber.StatusNotFound, "milestones.not_found")
	}

	if _, err := handler.milestoneService.FindByID(milestoneID); err != nil {
		return handler.storageError(c, err, "milestones.not_found")
	}

	if err := handler.taskService.DeleteTaskMilestone(taskID, milestoneID); err != nil {
		return handler.storageError(c, err, "tasks.not_found")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
