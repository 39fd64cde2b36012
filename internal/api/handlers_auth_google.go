package api

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mpradela/managme/internal/models"
	"github.com/mpradela/managme/internal/security"
	"golang.org/x/crypto/bcrypt"
)

const googleStateCookie = "oauth_state"

const googleUserinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type googleUserinfo struct {
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
}

// GoogleLogin starts the OAuth dance. The state value round-trips through a
// short-lived cookie so the callback can reject forged requests.
func (handler *Handler) GoogleLogin(c *fiber.Ctx) error {
	if handler.googleOAuth == nil {
		return handler.apiError(c, fiber.StatusNotFound, "common.server_error")
	}

	state, err := security.RandomHex(32)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "common.server_error")
	}

	c.Cookie(&fiber.Cookie{
		Name:     googleStateCookie,
		Value:    state,
		Expires:  time.Now().Add(10 * time.Minute),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.Redirect(handler.googleOAuth.AuthCodeURL(state), fiber.StatusTemporaryRedirect)
}

// GoogleCallback signs the Google account in, creating a local account on
// first contact. Failures land the browser back on the login page rather
// than a JSON error, since this is a redirect flow.
func (handler *Handler) GoogleCallback(c *fiber.Ctx) error {
	failureURL := handler.clientURL + "/login"

	if handler.googleOAuth == nil {
		return c.Redirect(failureURL, fiber.StatusTemporaryRedirect)
	}

	state := c.Query("state")
	if state == "" || state != c.Cookies(googleStateCookie) {
		return c.Redirect(failureURL, fiber.StatusTemporaryRedirect)
	}
	c.ClearCookie(googleStateCookie)

	code := c.Query("code")
	if code == "" {
		return c.Redirect(failureURL, fiber.StatusTemporaryRedirect)
	}

	oauthToken, err := handler.googleOAuth.Exchange(context.Background(), code)
	if err != nil {
		return c.Redirect(failureURL, fiber.StatusTemporaryRedirect)
	}

	info, err := handler.fetchGoogleUserinfo(oauthToken.AccessToken)
	if err != nil || info.Email == "" {
		return c.Redirect(failureURL, fiber.StatusTemporaryRedirect)
	}

	user, err := handler.findOrCreateGoogleUser(info)
	if err != nil {
		return c.Redirect(failureURL, fiber.StatusTemporaryRedirect)
	}

	token, err := handler.buildToken(&user)
	if err != nil {
		return c.Redirect(failureURL, fiber.StatusTemporaryRedirect)
	}

	return c.Redirect(handler.clientURL+"/#token="+token, fiber.StatusTemporaryRedirect)
}

func (handler *Handler) fetchGoogleUserinfo(accessToken string) (googleUserinfo, error) {
	agent := fiber.Get(googleUserinfoURL)
	agent.Set(fiber.HeaderAuthorization, "Bearer "+accessToken)

	status, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return googleUserinfo{}, errs[0]
	}
	if status != fiber.StatusOK {
		return googleUserinfo{}, fiber.NewError(status, "userinfo request failed")
	}

	var info googleUserinfo
	if err := json.Unmarshal(body, &info); err != nil {
		return googleUserinfo{}, err
	}
	return info, nil
}

// findOrCreateGoogleUser provisions an account keyed by the Google email.
// The random password is never shown anywhere; it exists so the account has
// a hash and password login stays closed until the user resets it.
func (handler *Handler) findOrCreateGoogleUser(info googleUserinfo) (models.User, error) {
	user, err := handler.authService.FindByNormalizedLogin(info.Email)
	if err == nil {
		return user, nil
	}

	randomPassword, err := security.RandomHex(32)
	if err != nil {
		return models.User{}, err
	}
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(randomPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	imie := info.GivenName
	if imie == "" {
		imie = info.Email
	}

	user = models.User{
		Imie:         imie,
		Nazwisko:     info.FamilyName,
		Login:        info.Email,
		PasswordHash: string(passwordHash),
		Rola:         handler.authService.RoleForNewLogin(info.Email),
		Language:     handler.i18n.DefaultLanguage(),
	}
	if err := handler.authService.CreateUser(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}
