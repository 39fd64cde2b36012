package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mpradela/managme/internal/services"
)

// Permit gates a mutating route by the caller's role. It sits behind
// AuthRequired, denies without side effects, and never consults the role
// snapshot in the token.
func (handler *Handler) Permit(operation services.Operation) fiber.Handler {
	allowedRoles := services.AllowedRoles(operation)
	return func(c *fiber.Ctx) error {
		user, ok := currentUser(c)
		if !ok {
			return handler.apiError(c, fiber.StatusUnauthorized, "auth.unauthorized")
		}
		if !services.IsAuthorized(user.Rola, allowedRoles) {
			return handler.apiError(c, fiber.StatusForbidden, "auth.forbidden")
		}
		return c.Next()
	}
}
