package api

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func (handler *Handler) apiError(c *fiber.Ctx, status int, messageKey string) error {
	return c.Status(status).JSON(fiber.Map{"msg": handler.translate(c, messageKey)})
}

func (handler *Handler) apiMessage(c *fiber.Ctx, status int, messageKey string) error {
	return c.Status(status).JSON(fiber.Map{"msg": handler.translate(c, messageKey)})
}

// storageError maps a repository failure onto the error taxonomy: a missing
// record is the caller's 404, anything else is a generic 500.
func (handler *Handler) storageError(c *fiber.Ctx, err error, notFoundKey string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return handler.apiError(c, fiber.StatusNotFound, notFoundKey)
	}
	return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
}

func (handler *Handler) translate(c *fiber.Ctx, key string) string {
	if messages := currentMessages(c); messages != nil {
		if value, ok := messages[key]; ok && strings.TrimSpace(value) != "" {
			return value
		}
	}
	return handler.i18n.Translate(handler.i18n.DefaultLanguage(), key)
}

// parseIDParam reads a numeric route parameter. A malformed id behaves like
// a missing resource.
func parseIDParam(c *fiber.Ctx, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Params(name))
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		return 0, false
	}
	return uint(parsed), true
}
