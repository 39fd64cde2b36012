package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mpradela/managme/internal/models"
	"github.com/mpradela/managme/internal/services"
)

func (handler *Handler) ListMilestones(c *fiber.Ctx) error {
	milestones, err := handler.milestoneService.List()
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}

	views, err := handler.buildMilestoneViews(milestones)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}
	return c.JSON(views)
}

func (handler *Handler) GetMilestone(c *fiber.Ctx) error {
	milestoneID, ok := parseIDParam(c, "id")
	if !ok {
		return handler.apiError(c, fiber.StatusNotFound, "milestones.not_found")
	}

	milestone, err := handler.milestoneService.FindByID(milestoneID)
	if err != nil {
		return handler.storageError(c, err, "milestones.not_found")
	}

	view, err := handler.buildMilestoneView(milestone)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}
	return c.JSON(view)
}

func (handler *Handler) CreateMilestone(c *fiber.Ctx) error {
	var input milestoneInput
	if err := c.BodyParser(&input); err != nil || !input.validate(true) {
		return handler.apiError(c, fiber.StatusBadRequest, "milestones.validation_error")
	}

	exists, err := handler.repositories.Projects.Exists(input.StoryID)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}
	if !exists {
		return handler.apiError(c, fiber.StatusBadRequest, "projects.not_found")
	}

	milestone := models.Milestone{
		Name:          input.Name,
		Description:   input.Description,
		Priority:      input.Priority,
		Status:        input.Status,
		EstimatedTime: input.EstimatedTime,
		AssignedToID:  input.AssignedToID,
		StoryID:       input.StoryID,
	}
	if milestone.Status == models.MilestoneStatusDone {
		now := time.Now()
		milestone.EndDate = &now
	}
	if err := handler.milestoneService.Create(&milestone); err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}

	view, err := handler.buildMilestoneView(milestone)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

func (handler *Handler) UpdateMilestone(c *fiber.Ctx) error {
	milestoneID, ok := parseIDParam(c, "id")
	if !ok {
		return handler.apiError(c, fiber.StatusNotFound, "milestones.not_found")
	}

	milestone, err := handler.milestoneService.FindByID(milestoneID)
	if err != nil {
		return handler.storageError(c, err, "milestones.not_found")
	}

	var input milestoneInput
	if err := c.BodyParser(&input); err != nil || !input.validate(true) {
		return handler.apiError(c, fiber.StatusBadRequest, "milestones.validation_error")
	}

	if input.StoryID != milestone.StoryID {
		exists, err := handler.repositories.Projects.Exists(input.StoryID)
		if err != nil {
			return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
		}
		if !exists {
			return handler.apiError(c, fiber.StatusBadRequest, "projects.not_found")
		}
	}

	previous := milestone
	milestone.Name = input.Name
	milestone.Description = input.Description
	milestone.Priority = input.Priority
	milestone.Status = input.Status
	milestone.EstimatedTime = input.EstimatedTime
	milestone.AssignedToID = input.AssignedToID
	milestone.StoryID = input.StoryID
	services.ApplyStatusTransition(previous, &milestone, time.Now())

	if err := handler.milestoneService.Save(&milestone); err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}

	view, err := handler.buildMilestoneView(milestone)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}
	return c.JSON(view)
}

func (handler *Handler) DeleteMilestone(c *fiber.Ctx) error {
	milestoneID, ok := parseIDParam(c, "id")
	if !ok {
		return handler.apiError(c, fiber.StatusNotFound, "milestones.not_found")
	}

	if _, err := handler.milestoneService.FindByID(milestoneID); err != nil {
		return handler.storageError(c, err, "milestones.not_found")
	}

	if err := handler.milestoneService.Delete(milestoneID); err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}

	return handler.apiMessage(c, fiber.StatusOK, "milestones.deleted")
}

// AssignMilestone puts the milestone into doing under the given user and
// starts its clock.
func (handler *Handler) AssignMilestone(c *fiber.Ctx) error {
	milestoneID, ok := parseIDParam(c, "id")
	if !ok {
		return handler.apiError(c, fiber.StatusNotFound, "milestones.not_found")
	}

	var input assignMilestoneInput
	if err := c.BodyParser(&input); err != nil || input.UserID == 0 {
		return handler.apiError(c, fiber.StatusBadRequest, "milestones.validation_error")
	}

	if _, err := handler.authService.FindByID(input.UserID); err != nil {
		return handler.storageError(c, err, "users.not_found")
	}

	milestone, err := handler.milestoneService.Assign(milestoneID, input.UserID, time.Now())
	if err != nil {
		return handler.storageError(c, err, "milestones.not_found")
	}

	view, err := handler.buildMilestoneView(milestone)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}
	return c.JSON(view)
}

func (handler *Handler) CompleteMilestone(c *fiber.Ctx) error {
	milestoneID, ok := parseIDParam(c, "id")
	if !ok {
		return handler.apiError(c, fiber.StatusNotFound, "milestones.not_found")
	}

	milestone, err := handler.milestoneService.Complete(milestoneID, time.Now())
	if err != nil {
		return handler.storageError(c, err, "milestones.not_found")
	}

	view, err := handler.buildMilestoneView(milestone)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}
	return c.JSON(view)
}
