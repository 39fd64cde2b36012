package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/mpradela/managme/internal/db"
	"github.com/mpradela/managme/internal/i18n"
	"github.com/mpradela/managme/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testPrimaryAdminLogin = "root.admin@example.com"

type fakeMailer struct {
	mu   sync.Mutex
	sent []fakeMail
}

type fakeMail struct {
	To        string
	Language  string
	ResetLink string
}

func (mailer *fakeMailer) SendPasswordReset(to string, language string, resetLink string) error {
	mailer.mu.Lock()
	defer mailer.mu.Unlock()
	mailer.sent = append(mailer.sent, fakeMail{To: to, Language: language, ResetLink: resetLink})
	return nil
}

func (mailer *fakeMailer) sentMail() []fakeMail {
	mailer.mu.Lock()
	defer mailer.mu.Unlock()
	result := make([]fakeMail, len(mailer.sent))
	copy(result, mailer.sent)
	return result
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, *fakeMailer) {
	t.Helper()

	_, testFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("resolve current test file path")
	}

	apiDir := filepath.Dir(testFile)
	localesDir := filepath.Join(filepath.Dir(apiDir), "i18n", "locales")
	databasePath := filepath.Join(t.TempDir(), "managme-test.db")

	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	i18nManager, err := i18n.NewManager("pl", localesDir)
	if err != nil {
		t.Fatalf("init i18n: %v", err)
	}

	mailer := &fakeMailer{}
	handler, err := NewHandler(database, Config{
		SecretKey:         "test-secret-key",
		PrimaryAdminLogin: testPrimaryAdminLogin,
		ClientURL:         "http://client.test",
		UploadsDir:        t.TempDir(),
	}, i18nManager, mailer)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database, mailer
}

func createTestUser(t *testing.T, database *gorm.DB, login string, password string, role string) models.User {
	t.Helper()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := models.User{
		Imie:         "Test",
		Nazwisko:     "User",
		Login:        login,
		PasswordHash: string(passwordHash),
		Rola:         role,
		Language:     models.LanguagePL,
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func loginAndToken(t *testing.T, app *fiber.App, login string, password string) string {
	t.Helper()

	response := doJSONRequest(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"login":    login,
		"password": password,
	}, "")
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d, want 200", response.StatusCode)
	}

	payload := struct {
		Token string `json:"token"`
	}{}
	decodeJSONBody(t, response, &payload)
	if payload.Token == "" {
		t.Fatal("login response has no token")
	}
	return payload.Token
}

func doJSONRequest(t *testing.T, app *fiber.App, method string, target string, payload interface{}, token string) *http.Response {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode request payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	} else {
		body = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, target, body)
	if payload != nil {
		request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		request.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, target, err)
	}
	return response
}

func decodeJSONBody(t *testing.T, response *http.Response, target interface{}) {
	t.Helper()

	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func itoa(value uint) string {
	return strconv.FormatUint(uint64(value), 10)
}

func requireStatus(t *testing.T, response *http.Response, want int) {
	t.Helper()

	if response.StatusCode != want {
		t.Fatalf("status = %d, want %d", response.StatusCode, want)
	}
}
