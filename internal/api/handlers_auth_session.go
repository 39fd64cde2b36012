package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mpradela/managme/internal/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	loginAttemptLimit  = 8
	loginAttemptWindow = 15 * time.Minute
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	var input registerInput
	if err := c.BodyParser(&input); err != nil || !input.validate() {
		return handler.apiError(c, fiber.StatusBadRequest, "auth.invalid_input")
	}

	taken, err := handler.authService.RegistrationLoginExists(input.Login)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}
	if taken {
		return handler.apiError(c, fiber.StatusBadRequest, "auth.login_taken")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}

	user := models.User{
		Imie:         input.Imie,
		Nazwisko:     input.Nazwisko,
		Login:        input.Login,
		PasswordHash: string(passwordHash),
		Rola:         handler.authService.RoleForNewLogin(input.Login),
		Language:     handler.i18n.DefaultLanguage(),
	}
	if err := handler.authService.CreateUser(&user); err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}

	return handler.apiMessage(c, fiber.StatusCreated, "auth.registered")
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "auth.invalid_input")
	}

	limiterKey := requestLimiterKey(c)
	now := time.Now()
	if handler.loginLimiter.tooManyRecent(limiterKey, now, loginAttemptLimit, loginAttemptWindow) {
		return handler.apiError(c, fiber.StatusTooManyRequests, "auth.too_many_attempts")
	}

	user, err := handler.authService.FindByNormalizedLogin(input.Login)
	if err != nil {
		handler.loginLimiter.addFailure(limiterKey, now, loginAttemptWindow)
		return handler.apiError(c, fiber.StatusBadRequest, "auth.invalid_credentials")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		handler.loginLimiter.addFailure(limiterKey, now, loginAttemptWindow)
		return handler.apiError(c, fiber.StatusBadRequest, "auth.invalid_credentials")
	}

	token, err := handler.buildToken(&user)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}

	handler.loginLimiter.reset(limiterKey)
	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":   user.ID,
			"imie": user.Imie,
			"rola": user.Rola,
		},
	})
}
