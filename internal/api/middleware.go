package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mpradela/managme/internal/models"
)

const (
	contextUserKey     = "current_user"
	contextLanguageKey = "current_language"
	contextMessagesKey = "current_messages"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

func currentMessages(c *fiber.Ctx) map[string]string {
	messages, _ := c.Locals(contextMessagesKey).(map[string]string)
	return messages
}

// LanguageMiddleware picks the response language from Accept-Language for
// unauthenticated requests. AuthRequired overrides it with the user's saved
// preference once the caller is known.
func (handler *Handler) LanguageMiddleware(c *fiber.Ctx) error {
	language := handler.i18n.DetectFromAcceptLanguage(c.Get("Accept-Language"))
	c.Locals(contextLanguageKey, language)
	c.Locals(contextMessagesKey, handler.i18n.Messages(language))
	return c.Next()
}
