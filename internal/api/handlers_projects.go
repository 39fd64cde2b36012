package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mpradela/managme/internal/models"
)

func (handler *Handler) ListProjects(c *fiber.Ctx) error {
	projects, err := handler.projectService.List()
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}

	views, err := handler.buildProjectViews(projects)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}
	return c.JSON(views)
}

func (handler *Handler) GetProject(c *fiber.Ctx) error {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return handler.apiError(c, fiber.StatusNotFound, "projects.not_found")
	}

	project, err := handler.projectService.FindByID(projectID)
	if err != nil {
		return handler.storageError(c, err, "projects.not_found")
	}

	view, err := handler.buildProjectView(project)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}
	return c.JSON(view)
}

func (handler *Handler) CreateProject(c *fiber.Ctx) error {
	var input projectInput
	if err := c.BodyParser(&input); err != nil || !input.validate() {
		return handler.apiError(c, fiber.StatusBadRequest, "projects.validation_error")
	}

	project := models.Project{
		Name:        input.Name,
		Description: input.Description,
		Deadline:    input.Deadline,
		Status:      input.Status,
		TeamIDs:     input.TeamIDs,
	}
	if err := handler.projectService.Create(&project); err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}

	view, err := handler.buildProjectView(project)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

func (handler *Handler) UpdateProject(c *fiber.Ctx) error {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return handler.apiError(c, fiber.StatusNotFound, "projects.not_found")
	}

	project, err := handler.projectService.FindByID(projectID)
	if err != nil {
		return handler.storageError(c, err, "projects.not_found")
	}

	var input projectInput
	if err := c.BodyParser(&input); err != nil || !input.validate() {
		return handler.apiError(c, fiber.StatusBadRequest, "projects.validation_error")
	}

	project.Name = input.Name
	project.Description = input.Description
	project.Deadline = input.Deadline
	project.Status = input.Status
	project.TeamIDs = input.TeamIDs
	if err := handler.projectService.Save(&project); err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}

	view, err := handler.buildProjectView(project)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}
	return c.JSON(view)
}

func (handler *Handler) DeleteProject(c *fiber.Ctx) error {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return handler.apiError(c, fiber.StatusNotFound, "projects.not_found")
	}

	if _, err := handler.projectService.FindByID(projectID); err != nil {
		return handler.storageError(c, err, "projects.not_found")
	}

	if err := handler.projectService.Delete(projectID); err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}

	return handler.apiMessage(c, fiber.StatusOK, "projects.deleted")
}
