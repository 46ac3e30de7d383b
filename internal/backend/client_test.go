package backend

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/davrbek/facegate/internal/domain/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(testWriter{}, &slog.HandlerOptions{Level: slog.LevelError}))
}

type testWriter struct{}

func (testWriter) Write(p []byte) (int, error) { return len(p), nil }

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, testLogger()), srv
}

func TestClientHeaders(t *testing.T) {
	var gotAuth, gotLang, gotAccept string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotLang = r.Header.Get("Accept-Language")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{"data":{"models":[],"meta":{"current_page":1,"last_page":1,"per_page":10,"total":0}}}`))
	})

	cred := Credentials{Token: "tok-123", Locale: "ru"}
	if _, _, err := client.ListUsers(context.Background(), cred, nil); err != nil {
		t.Fatalf("ListUsers: %v", err)
	}

	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, ожидался Bearer tok-123", gotAuth)
	}
	if gotLang != "ru" {
		t.Errorf("Accept-Language = %q, ожидался ru", gotLang)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q", gotAccept)
	}
}

func TestClientCollectionEnvelope(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"models":[
			{"id":1,"first_name":"Anvar","last_name":"Karimov","status":true},
			{"id":2,"first_name":"Olim","last_name":"Rasulov","status":false}
		],"meta":{"current_page":2,"last_page":5,"per_page":10,"total":42}}}`))
	})

	users, meta, err := client.ListUsers(context.Background(), Credentials{}, nil)
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("len(users) = %d, ожидалось 2", len(users))
	}
	if users[0].FullName() != "Anvar Karimov" {
		t.Errorf("FullName = %q", users[0].FullName())
	}
	if meta.CurrentPage != 2 || meta.Total != 42 {
		t.Errorf("meta = %+v", meta)
	}
	if meta.Pages() != 5 {
		t.Errorf("Pages() = %d, ожидалось 5", meta.Pages())
	}
}

func TestClientQueryOnWire(t *testing.T) {
	var gotQuery url.Values
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"data":{"models":[],"meta":{}}}`))
	})

	q := url.Values{}
	q.Set("page", "3")
	q.Set("limit", "25")
	q.Set("status", "active")
	if _, _, err := client.ListUsers(context.Background(), Credentials{}, q); err != nil {
		t.Fatalf("ListUsers: %v", err)
	}

	if gotQuery.Get("page") != "3" || gotQuery.Get("limit") != "25" || gotQuery.Get("status") != "active" {
		t.Errorf("query на проводе = %v", gotQuery)
	}
}

func TestClientValidationError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"Validation failed","errors":{
			"phone":["The phone field is required."],
			"login":"The login field is required."
		}}`))
	})

	_, err := client.CreateUser(context.Background(), Credentials{}, model.UserInput{})
	apiErr := AsAPIError(err)
	if apiErr == nil {
		t.Fatalf("ожидался *APIError, получено %v", err)
	}
	if apiErr.Kind != KindValidation {
		t.Errorf("Kind = %s, ожидался %s", apiErr.Kind, KindValidation)
	}
	if got := apiErr.Fields["phone"]; len(got) != 1 || got[0] != "The phone field is required." {
		t.Errorf("Fields[phone] = %v", got)
	}
	// Строковое значение вместо массива тоже разбирается.
	if got := apiErr.Fields["login"]; len(got) != 1 {
		t.Errorf("Fields[login] = %v", got)
	}
}

func TestClientDuplicateIsConflict(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"Validation failed","errors":{
			"login":["The login has already been taken."]
		}}`))
	})

	_, err := client.CreateUser(context.Background(), Credentials{}, model.UserInput{})
	apiErr := AsAPIError(err)
	if apiErr == nil {
		t.Fatalf("ожидался *APIError, получено %v", err)
	}
	if apiErr.Kind != KindConflict {
		t.Errorf("Kind = %s, ожидался %s", apiErr.Kind, KindConflict)
	}
}

func TestClientLogicalError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// Логическая ошибка: HTTP 200 с error_class в теле.
		w.Write([]byte(`{"error_class":"DeviceUnreachable","message":"Терминал недоступен"}`))
	})

	err := client.AddUsersToDevice(context.Background(), Credentials{}, 7, []int64{1, 2})
	apiErr := AsAPIError(err)
	if apiErr == nil {
		t.Fatalf("ожидался *APIError, получено %v", err)
	}
	if apiErr.Kind != KindLogical {
		t.Errorf("Kind = %s, ожидался %s", apiErr.Kind, KindLogical)
	}
	if apiErr.Message != "Терминал недоступен" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestClientStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		kind   ErrorKind
	}{
		{http.StatusUnauthorized, KindUnauthorized},
		{http.StatusNotFound, KindNotFound},
		{http.StatusConflict, KindConflict},
		{http.StatusInternalServerError, KindInternal},
	}
	for _, tc := range tests {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			w.Write([]byte(`{"message":"boom"}`))
		})
		_, err := client.GetUser(context.Background(), Credentials{}, 1)
		apiErr := AsAPIError(err)
		if apiErr == nil {
			t.Fatalf("status %d: ожидался *APIError, получено %v", tc.status, err)
		}
		if apiErr.Kind != tc.kind {
			t.Errorf("status %d: Kind = %s, ожидался %s", tc.status, apiErr.Kind, tc.kind)
		}
	}
}

func TestClientNetworkErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	client := New(srv.URL, time.Second, testLogger())

	_, _, err := client.ListUsers(context.Background(), Credentials{}, nil)
	apiErr := AsAPIError(err)
	if apiErr == nil {
		t.Fatalf("ожидался *APIError, получено %v", err)
	}
	if apiErr.Kind != KindUnavailable {
		t.Errorf("Kind = %s, ожидался %s", apiErr.Kind, KindUnavailable)
	}
}

func TestClientLogin(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/login" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "" {
			t.Errorf("login не должен нести Authorization, получено %q", auth)
		}
		w.Write([]byte(`{"data":{"token":"jwt-abc","token_expiration":"2026-09-01T12:00:00Z",
			"user":{"id":1,"first_name":"Admin","last_name":"Adminov"}}}`))
	})

	res, err := client.Login(context.Background(), "ru", "admin", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Token != "jwt-abc" {
		t.Errorf("Token = %q", res.Token)
	}
	if res.ExpiresAt != "2026-09-01T12:00:00Z" {
		t.Errorf("ExpiresAt = %q", res.ExpiresAt)
	}
	if res.User == nil || res.User.ID != 1 {
		t.Errorf("User = %+v", res.User)
	}
}
