package i18n

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

func loadBundle(t *testing.T) *Bundle {
	t.Helper()
	b, err := Load(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return b
}

func TestTranslateFallback(t *testing.T) {
	b := loadBundle(t)

	if got := b.Translate("ru", "nav.users"); got != "Пользователи" {
		t.Errorf("ru nav.users = %q", got)
	}
	if got := b.Translate("uz", "nav.users"); got != "Foydalanuvchilar" {
		t.Errorf("uz nav.users = %q", got)
	}
	// Язык без каталога падает на en.
	if got := b.Translate("de", "nav.users"); got != "Users" {
		t.Errorf("de nav.users = %q", got)
	}
	// Неизвестный ключ возвращается как есть.
	if got := b.Translate("ru", "no.such.key"); got != "no.such.key" {
		t.Errorf("no.such.key = %q", got)
	}
}

func TestCatalogsShareKeys(t *testing.T) {
	b := loadBundle(t)
	en := b.catalogs["en"]
	for _, lang := range []string{"ru", "uz"} {
		for key := range en {
			if _, ok := b.catalogs[lang][key]; !ok {
				t.Errorf("каталог %s: нет ключа %s", lang, key)
			}
		}
		for key := range b.catalogs[lang] {
			if _, ok := en[key]; !ok {
				t.Errorf("каталог %s: лишний ключ %s", lang, key)
			}
		}
	}
}

func TestDetectPriority(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Accept-Language", "ru-RU,ru;q=0.9")
	r.AddCookie(&http.Cookie{Name: LangCookieName, Value: "uz"})
	if got := Detect(r); got != "uz" {
		t.Errorf("cookie должна побеждать заголовок, получено %q", got)
	}

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Accept-Language", "ru-RU,ru;q=0.9")
	if got := Detect(r); got != "ru" {
		t.Errorf("Accept-Language ru → %q", got)
	}

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: LangCookieName, Value: "fr"})
	if got := Detect(r); got != "en" {
		t.Errorf("неподдерживаемая cookie → default en, получено %q", got)
	}
}

func TestMatch(t *testing.T) {
	tests := []struct{ accept, want string }{
		{"uz-UZ,uz;q=0.9,ru;q=0.8", "uz"},
		{"ru", "ru"},
		{"en-US,en;q=0.5", "en"},
		{"de-DE", "en"},
	}
	for _, tc := range tests {
		if got := Match(tc.accept); got != tc.want {
			t.Errorf("Match(%q) = %q, ожидалось %q", tc.accept, got, tc.want)
		}
	}
}
