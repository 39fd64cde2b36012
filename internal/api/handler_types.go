package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mpradela/managme/internal/db"
	"github.com/mpradela/managme/internal/i18n"
	"github.com/mpradela/managme/internal/services"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

// Config carries everything the handler needs from the environment.
type Config struct {
	SecretKey          string
	PrimaryAdminLogin  string
	ClientURL          string
	UploadsDir         string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
}

type Handler struct {
	db                *gorm.DB
	secretKey         []byte
	primaryAdminLogin string
	clientURL         string
	uploadsDir        string
	i18n              *i18n.Manager
	mailer            services.Mailer
	googleOAuth       *oauth2.Config

	repositories     *db.Repositories
	authService      *services.AuthService
	userService      *services.UserService
	projectService   *services.ProjectService
	taskService      *services.TaskService
	milestoneService *services.MilestoneService

	loginLimiter    *attemptLimiter
	recoveryLimiter *attemptLimiter
}

const authTokenTTL = time.Hour

const maxAvatarSize = 5 * 1024 * 1024

type authClaims struct {
	UserID uint   `json:"uid"`
	Rola   string `json:"rola"`
	jwt.RegisteredClaims
}
