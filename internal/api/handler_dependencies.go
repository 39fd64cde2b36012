package api

import (
	"errors"
	"strings"

	"github.com/mpradela/managme/internal/db"
	"github.com/mpradela/managme/internal/i18n"
	"github.com/mpradela/managme/internal/services"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

// Endpoints hardcoded rather than pulled from the google subpackage to keep
// the dependency surface down.
var googleOAuthEndpoint = oauth2.Endpoint{
	AuthURL:  "https://accounts.google.com/o/oauth2/auth",
	TokenURL: "https://oauth2.googleapis.com/token",
}

func NewHandler(database *gorm.DB, config Config, i18nManager *i18n.Manager, mailer services.Mailer) (*Handler, error) {
	if strings.TrimSpace(config.SecretKey) == "" {
		return nil, errors.New("secret key is required")
	}
	if i18nManager == nil {
		return nil, errors.New("i18n manager is required")
	}
	if mailer == nil {
		return nil, errors.New("mailer is required")
	}

	handler := &Handler{
		db:                database,
		secretKey:         []byte(config.SecretKey),
		primaryAdminLogin: strings.ToLower(strings.TrimSpace(config.PrimaryAdminLogin)),
		clientURL:         strings.TrimRight(config.ClientURL, "/"),
		uploadsDir:        config.UploadsDir,
		i18n:              i18nManager,
		mailer:            mailer,
		loginLimiter:      newAttemptLimiter(),
		recoveryLimiter:   newAttemptLimiter(),
	}

	if config.GoogleClientID != "" && config.GoogleClientSecret != "" {
		handler.googleOAuth = &oauth2.Config{
			ClientID:     config.GoogleClientID,
			ClientSecret: config.GoogleClientSecret,
			RedirectURL:  config.GoogleRedirectURL,
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint:     googleOAuthEndpoint,
		}
	}

	return handler.withDependencies(database), nil
}

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users, handler.primaryAdminLogin)
	handler.userService = services.NewUserService(
		handler.repositories.Users,
		handler.repositories.Projects,
		handler.repositories.Tasks,
		handler.primaryAdminLogin,
	)
	handler.projectService = services.NewProjectService(handler.repositories.Projects, handler.repositories.Users)
	handler.taskService = services.NewTaskService(
		handler.repositories.Tasks,
		handler.repositories.Projects,
		handler.repositories.Milestones,
	)
	handler.milestoneService = services.NewMilestoneService(handler.repositories.Milestones)
	return handler
}
