package i18n

import (
	"path/filepath"
	"runtime"
	"testing"
)

func newTestManager(t *testing.T, defaultLanguage string) *Manager {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("resolve test file path")
	}
	localesDir := filepath.Join(filepath.Dir(thisFile), "locales")

	manager, err := NewManager(defaultLanguage, localesDir)
	if err != nil {
		t.Fatalf("init manager: %v", err)
	}
	return manager
}

func TestNormalizeLanguageFallsBackToDefault(t *testing.T) {
	t.Parallel()

	manager := newTestManager(t, "pl")

	cases := map[string]string{
		"pl":    "pl",
		"EN":    "en",
		"en-US": "en",
		"pl_PL": "pl",
		"de":    "pl",
		"":      "pl",
		"  ":    "pl",
	}
	for input, want := range cases {
		if got := manager.NormalizeLanguage(input); got != want {
			t.Errorf("NormalizeLanguage(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestDetectFromAcceptLanguage(t *testing.T) {
	t.Parallel()

	manager := newTestManager(t, "pl")

	cases := map[string]string{
		"en-GB,en;q=0.9,pl;q=0.8": "en",
		"de-DE,de;q=0.9":          "pl",
		"pl-PL,pl;q=0.9,en;q=0.8": "pl",
		"":                        "pl",
	}
	for input, want := range cases {
		if got := manager.DetectFromAcceptLanguage(input); got != want {
			t.Errorf("DetectFromAcceptLanguage(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestTranslateUnknownKeyReturnsKey(t *testing.T) {
	t.Parallel()

	manager := newTestManager(t, "pl")

	if got := manager.Translate("pl", "does.not.exist"); got != "does.not.exist" {
		t.Fatalf("Translate unknown key = %q, want the key itself", got)
	}
}

func TestMessagesOverlayTargetOnDefault(t *testing.T) {
	t.Parallel()

	manager := newTestManager(t, "pl")

	enMessages := manager.Messages("en")
	plMessages := manager.Messages("pl")

	if enMessages["common.server_error"] == plMessages["common.server_error"] {
		t.Fatal("expected en and pl to translate common.server_error differently")
	}
	if len(enMessages) < len(plMessages) {
		t.Fatalf("en overlay lost keys: %d < %d", len(enMessages), len(plMessages))
	}
}
