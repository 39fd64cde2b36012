package api

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return handler.apiError(c, fiber.StatusUnauthorized, "auth.unauthorized")
	}
	return c.JSON(user)
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return handler.apiError(c, fiber.StatusUnauthorized, "auth.unauthorized")
	}

	var input profileInput
	if err := c.BodyParser(&input); err != nil || !input.validate() {
		return handler.apiError(c, fiber.StatusBadRequest, "auth.invalid_input")
	}

	user.Imie = input.Imie
	user.Nazwisko = input.Nazwisko
	if err := handler.authService.SaveUser(user); err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}

	return c.JSON(user)
}

func (handler *Handler) UpdateSettings(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return handler.apiError(c, fiber.StatusUnauthorized, "auth.unauthorized")
	}

	var input settingsInput
	if err := c.BodyParser(&input); err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "auth.invalid_input")
	}

	if !handler.i18n.IsSupported(input.Language) {
		return handler.apiError(c, fiber.StatusBadRequest, "auth.invalid_language")
	}

	language := handler.i18n.NormalizeLanguage(input.Language)
	user.Language = language
	if err := handler.authService.SaveUser(user); err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}

	// Answer in the language the user just switched to.
	c.Locals(contextMessagesKey, handler.i18n.Messages(language))
	return c.JSON(fiber.Map{
		"msg":  handler.translate(c, "auth.settings_saved"),
		"user": user,
	})
}

// UploadAvatar stores the file under a per-user random name so uploads never
// collide or overwrite another account's picture.
func (handler *Handler) UploadAvatar(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return handler.apiError(c, fiber.StatusUnauthorized, "auth.unauthorized")
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "auth.no_file")
	}
	if file.Size > maxAvatarSize {
		return handler.apiError(c, fiber.StatusBadRequest, "auth.file_too_large")
	}
	if !strings.HasPrefix(file.Header.Get(fiber.HeaderContentType), "image/") {
		return handler.apiError(c, fiber.StatusBadRequest, "auth.invalid_file_type")
	}

	filename := strconv.FormatUint(uint64(user.ID), 10) + "-" + uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveFile(file, filepath.Join(handler.uploadsDir, filename)); err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}

	user.AvatarURL = "/uploads/" + filename
	if err := handler.authService.SaveUser(user); err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}

	return c.JSON(user)
}

func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return handler.apiError(c, fiber.StatusUnauthorized, "auth.unauthorized")
	}

	if handler.authService.IsPrimaryAdmin(user.Login) {
		return handler.apiError(c, fiber.StatusForbidden, "users.primary_admin_delete")
	}

	if err := handler.userService.DeleteUser(user.ID); err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}

	return handler.apiMessage(c, fiber.StatusOK, "auth.account_deleted")
}
