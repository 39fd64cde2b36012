package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mpradela/managme/internal/models"
	"github.com/mpradela/managme/internal/services"
)

func (handler *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := handler.userService.ListWithTaskCounts()
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}
	return c.JSON(users)
}

func (handler *Handler) GetUser(c *fiber.Ctx) error {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return handler.apiError(c, fiber.StatusNotFound, "users.not_found")
	}

	user, projects, tasks, err := handler.userService.Detail(userID)
	if err != nil {
		return handler.storageError(c, err, "users.not_found")
	}

	projectViews, err := handler.buildProjectViews(projects)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}
	taskViews, err := handler.buildTaskViews(tasks)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}

	return c.JSON(userDetailView{User: user, Projects: projectViews, Tasks: taskViews})
}

func (handler *Handler) ChangeUserRole(c *fiber.Ctx) error {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return handler.apiError(c, fiber.StatusNotFound, "users.not_found")
	}

	var input changeRoleInput
	if err := c.BodyParser(&input); err != nil || !models.IsValidRole(input.Rola) {
		return handler.apiError(c, fiber.StatusBadRequest, "users.invalid_role")
	}

	user, err := handler.userService.ChangeRole(userID, input.Rola)
	if err != nil {
		if errors.Is(err, services.ErrPrimaryAdminImmutable) {
			return handler.apiError(c, fiber.StatusBadRequest, "users.primary_admin_role")
		}
		return handler.storageError(c, err, "users.not_found")
	}

	return c.JSON(fiber.Map{
		"msg":  handler.translate(c, "users.role_updated"),
		"user": user,
	})
}

func (handler *Handler) DeleteUser(c *fiber.Ctx) error {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return handler.apiError(c, fiber.StatusNotFound, "users.not_found")
	}

	if err := handler.userService.DeleteUser(userID); err != nil {
		if errors.Is(err, services.ErrPrimaryAdminImmutable) {
			return handler.apiError(c, fiber.StatusBadRequest, "users.primary_admin_delete")
		}
		return handler.storageError(c, err, "users.not_found")
	}

	return handler.apiMessage(c, fiber.StatusOK, "users.deleted")
}
