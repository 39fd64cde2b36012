package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/mpradela/managme/internal/models"
	"gorm.io/gorm"
)

var (
	errMissingToken = errors.New("missing bearer token")
	errInvalidToken = errors.New("invalid token")
)

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		key := "auth.unauthorized"
		switch {
		case errors.Is(err, errInvalidToken):
			key = "auth.invalid_token"
		case errors.Is(err, gorm.ErrRecordNotFound):
			key = "auth.user_not_found"
		}
		return handler.apiError(c, fiber.StatusUnauthorized, key)
	}

	c.Locals(contextUserKey, user)
	c.Locals(contextLanguageKey, handler.i18n.NormalizeLanguage(user.Language))
	c.Locals(contextMessagesKey, handler.i18n.Messages(user.Language))
	return c.Next()
}

// authenticateRequest resolves the bearer credential to a persisted user.
// The role inside the token is a snapshot from issuance; authorization
// decisions use the freshly loaded record instead.
func (handler *Handler) authenticateRequest(c *fiber.Ctx) (*models.User, error) {
	authHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, errMissingToken
	}
	rawToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if rawToken == "" {
		return nil, errMissingToken
	}

	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errInvalidToken
	}

	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return nil, errInvalidToken
	}

	user, err := handler.authService.FindByID(claims.UserID)
	if err != nil {
		return nil, err
	}

	return &user, nil
}
