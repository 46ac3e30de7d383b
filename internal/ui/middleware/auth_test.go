package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/davrbek/facegate/internal/backend"
	"github.com/davrbek/facegate/internal/service"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(discardWriter{}, &slog.HandlerOptions{Level: slog.LevelError}))
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// fakeBackend отдаёт /auth/me с правами только на просмотр пользователей.
func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/me" {
			t.Errorf("неожиданный путь %s", r.URL.Path)
		}
		w.Write([]byte(`{"data":{"id":5,"first_name":"Test","last_name":"User","includes":{
			"role":{"id":1,"name":{"en":"Operator"},"key":"operator",
				"permissions":[{"id":1,"name":"Users","action":"view-user"},
				               {"id":2,"name":"Dashboard","action":"view-dashboard"}]}}}}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newAuth(t *testing.T) *Auth {
	t.Helper()
	client := backend.New(fakeBackend(t).URL, time.Second, discardLogger())
	principals := service.NewPrincipalService(client, 10, time.Minute, discardLogger())
	return NewAuth(principals, discardLogger())
}

func sessionCookies(expiresAt time.Time) []*http.Cookie {
	return []*http.Cookie{
		{Name: "token", Value: "tok"},
		{Name: "token_expiration", Value: expiresAt.UTC().Format(time.RFC3339)},
	}
}

func serve(a *Auth, r *http.Request) (*httptest.ResponseRecorder, bool) {
	var reached bool
	handler := a.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		if PrincipalFrom(r.Context()) == nil {
			panic("principal отсутствует в контексте")
		}
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)
	return rec, reached
}

func TestAuthNoSessionRedirectsToLogin(t *testing.T) {
	a := newAuth(t)
	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)

	rec, reached := serve(a, r)
	if reached {
		t.Error("обработчик не должен вызываться без сессии")
	}
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/login" {
		t.Errorf("ожидался 302 /login, получено %d %s", rec.Code, rec.Header().Get("Location"))
	}
}

func TestAuthExpiredSessionRedirectsToLogin(t *testing.T) {
	a := newAuth(t)
	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, c := range sessionCookies(time.Now().Add(-time.Minute)) {
		r.AddCookie(c)
	}

	rec, reached := serve(a, r)
	if reached {
		t.Error("обработчик не должен вызываться с просроченной сессией")
	}
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/login" {
		t.Errorf("ожидался 302 /login, получено %d", rec.Code)
	}
}

func TestAuthValidSessionPasses(t *testing.T) {
	a := newAuth(t)
	r := httptest.NewRequest(http.MethodGet, "/users", nil)
	for _, c := range sessionCookies(time.Now().Add(time.Hour)) {
		r.AddCookie(c)
	}

	rec, reached := serve(a, r)
	if !reached {
		t.Fatalf("обработчик не вызван, статус %d", rec.Code)
	}
}

func TestAuthMissingPagePermissionRedirectsToDashboard(t *testing.T) {
	a := newAuth(t)
	// view-role не выдан fake-бэкендом.
	r := httptest.NewRequest(http.MethodGet, "/roles", nil)
	for _, c := range sessionCookies(time.Now().Add(time.Hour)) {
		r.AddCookie(c)
	}

	rec, reached := serve(a, r)
	if reached {
		t.Error("страница без права не должна открываться")
	}
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/dashboard" {
		t.Errorf("ожидался 302 /dashboard, получено %d %s", rec.Code, rec.Header().Get("Location"))
	}
}

func TestAuthHTMXRedirectHeader(t *testing.T) {
	a := newAuth(t)
	r := httptest.NewRequest(http.MethodGet, "/users", nil)
	r.Header.Set("HX-Request", "true")

	rec, _ := serve(a, r)
	if rec.Header().Get("HX-Redirect") != "/login" {
		t.Errorf("для HTMX ожидался заголовок HX-Redirect, получено %v", rec.Header())
	}
}
