package db

import (
	"testing"

	"github.com/mpradela/managme/internal/models"
)

func TestOpenSQLiteCreatesCaseInsensitiveLoginUniqueIndex(t *testing.T) {
	t.Parallel()

	database := newTestDatabase(t)

	firstUser := models.User{
		Imie:         "First",
		Login:        "QA-Test@ManagMe.Local",
		PasswordHash: "hash-1",
		Rola:         models.RoleReadonly,
		Language:     models.LanguagePL,
	}
	if err := database.Create(&firstUser).Error; err != nil {
		t.Fatalf("create first user: %v", err)
	}

	secondUser := models.User{
		Imie:         "Second",
		Login:        "qa-test@managme.local",
		PasswordHash: "hash-2",
		Rola:         models.RoleReadonly,
		Language:     models.LanguagePL,
	}
	if err := database.Create(&secondUser).Error; err == nil {
		t.Fatal("expected duplicate normalized login insert to fail")
	}
}
