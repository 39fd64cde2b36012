package api

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mpradela/managme/internal/security"
	"golang.org/x/crypto/bcrypt"
)

const (
	resetTokenLength = 40
	resetTokenTTL    = time.Hour

	recoveryAttemptLimit  = 5
	recoveryAttemptWindow = 15 * time.Minute
)

// ForgotPassword answers 200 whether or not the login exists, so the
// endpoint cannot be used to probe for accounts.
func (handler *Handler) ForgotPassword(c *fiber.Ctx) error {
	var input forgotPasswordInput
	if err := c.BodyParser(&input); err != nil || input.Login == "" {
		return handler.apiError(c, fiber.StatusBadRequest, "auth.invalid_input")
	}

	limiterKey := requestLimiterKey(c)
	now := time.Now()
	if handler.recoveryLimiter.tooManyRecent(limiterKey, now, recoveryAttemptLimit, recoveryAttemptWindow) {
		return handler.apiError(c, fiber.StatusTooManyRequests, "auth.too_many_attempts")
	}
	handler.recoveryLimiter.addFailure(limiterKey, now, recoveryAttemptWindow)

	token, err := security.RandomHex(resetTokenLength)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}

	user, found, err := handler.authService.BeginPasswordReset(input.Login, token, now.Add(resetTokenTTL))
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}

	if found {
		resetLink := fmt.Sprintf("%s/#reset-password?token=%s", handler.clientURL, token)
		if err := handler.mailer.SendPasswordReset(user.Login, user.Language, resetLink); err != nil {
			return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
		}
	}

	return handler.apiMessage(c, fiber.StatusOK, "auth.reset_link_sent")
}

func (handler *Handler) ResetPassword(c *fiber.Ctx) error {
	var input resetPasswordInput
	if err := c.BodyParser(&input); err != nil || input.Token == "" || len(input.Password) < minPasswordLength {
		return handler.apiError(c, fiber.StatusBadRequest, "auth.invalid_input")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}

	if _, err := handler.authService.CompletePasswordReset(input.Token, string(passwordHash), time.Now()); err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "auth.reset_token_invalid")
	}

	return handler.apiMessage(c, fiber.StatusOK, "auth.password_changed")
}
