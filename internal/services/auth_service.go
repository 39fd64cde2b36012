package services

import (
	"errors"
	"strings"
	"time"

	"github.com/mpradela/managme/internal/models"
	"gorm.io/gorm"
)

type AuthUserRepository interface {
	ExistsByNormalizedLogin(login string) (bool, error)
	FindByNormalizedLogin(login string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	FindByActiveResetToken(token string, now time.Time) (models.User, error)
	Create(user *models.User) error
	Save(user *models.User) error
}

type AuthService struct {
	users             AuthUserRepository
	primaryAdminLogin string
}

func NewAuthService(users AuthUserRepository, primaryAdminLogin string) *AuthService {
	return &AuthService{
		users:             users,
		primaryAdminLogin: normalizeLogin(primaryAdminLogin),
	}
}

func (service *AuthService) RegistrationLoginExists(login string) (bool, error) {
	return service.users.ExistsByNormalizedLogin(login)
}

func (service *AuthService) CreateUser(user *models.User) error {
	return service.users.Create(user)
}

func (service *AuthService) FindByNormalizedLogin(login string) (models.User, error) {
	return service.users.FindByNormalizedLogin(login)
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

func (service *AuthService) SaveUser(user *models.User) error {
	return service.users.Save(user)
}

// IsPrimaryAdmin reports whether the login names the distinguished
// administrator account that can never be demoted or deleted.
func (service *AuthService) IsPrimaryAdmin(login string) bool {
	return service.primaryAdminLogin != "" && normalizeLogin(login) == service.primaryAdminLogin
}

// RoleForNewLogin picks the role a freshly registered account starts with.
// The primary-admin address is auto-promoted, everyone else reads only.
func (service *AuthService) RoleForNewLogin(login string) string {
	if service.IsPrimaryAdmin(login) {
		return models.RoleAdmin
	}
	return models.RoleReadonly
}

// BeginPasswordReset stores a reset token on the account behind the login.
// It reports false without error when no such account exists so callers can
// answer identically either way.
func (service *AuthService) BeginPasswordReset(login string, token string, expires time.Time) (models.User, bool, error) {
	user, err := service.users.FindByNormalizedLogin(login)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, err
	}

	user.ResetPasswordToken = token
	user.ResetPasswordExpires = &expires
	if err := service.users.Save(&user); err != nil {
		return models.User{}, false, err
	}
	return user, true, nil
}

// CompletePasswordReset swaps in the new hash for the account holding a
// still-valid token and burns the token.
func (service *AuthService) CompletePasswordReset(token string, passwordHash string, now time.Time) (models.User, error) {
	user, err := service.users.FindByActiveResetToken(token, now)
	if err != nil {
		return models.User{}, err
	}

	user.PasswordHash = passwordHash
	user.ResetPasswordToken = ""
	user.ResetPasswordExpires = nil
	if err := service.users.Save(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func normalizeLogin(login string) string {
	return strings.ToLower(strings.TrimSpace(login))
}
