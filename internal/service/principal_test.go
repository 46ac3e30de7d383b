package service

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/davrbek/facegate/internal/backend"
	"github.com/davrbek/facegate/internal/domain/perm"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(discardWriter{}, &slog.HandlerOptions{Level: slog.LevelError}))
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

const meBody = `{"data":{
	"id":7,"first_name":"Dilshod","last_name":"Nazarov","login":"dilshod","status":true,
	"includes":{
		"role":{"id":1,"name":{"ru":"Администратор","en":"Administrator"},"key":"admin",
			"permissions":[{"id":1,"name":"Users","action":"view-user"},
			               {"id":2,"name":"Users","action":"create-user"}]}
	}
}}`

func TestPrincipalCurrentBuildsEvaluator(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/me" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(meBody))
	}))
	t.Cleanup(srv.Close)

	client := backend.New(srv.URL, time.Second, discardLogger())
	svc := NewPrincipalService(client, 10, time.Minute, discardLogger())

	p, err := svc.Current(context.Background(), backend.Credentials{Token: "tok", Locale: "ru"})
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if p.User.ID != 7 {
		t.Errorf("User.ID = %d", p.User.ID)
	}
	if !p.Evaluator.Has(perm.ActionViewUser) {
		t.Error("ожидалось право view-user")
	}
	if p.Evaluator.Has(perm.ActionDeleteUser) {
		t.Error("delete-user не выдавалось")
	}
	if p.Evaluator.RoleName() != "Администратор" {
		t.Errorf("RoleName = %q", p.Evaluator.RoleName())
	}
}

func TestPrincipalCacheByToken(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(meBody))
	}))
	t.Cleanup(srv.Close)

	client := backend.New(srv.URL, time.Second, discardLogger())
	svc := NewPrincipalService(client, 10, time.Minute, discardLogger())

	cred := backend.Credentials{Token: "tok-a", Locale: "ru"}
	for i := 0; i < 3; i++ {
		if _, err := svc.Current(context.Background(), cred); err != nil {
			t.Fatalf("Current: %v", err)
		}
	}
	if calls.Load() != 1 {
		t.Errorf("backend вызван %d раз, ожидался 1 (кэш по токену)", calls.Load())
	}

	// Другой токен — отдельная запись кэша.
	if _, err := svc.Current(context.Background(), backend.Credentials{Token: "tok-b", Locale: "ru"}); err != nil {
		t.Fatalf("Current: %v", err)
	}
	if calls.Load() != 2 {
		t.Errorf("backend вызван %d раз, ожидалось 2", calls.Load())
	}

	// Invalidate сбрасывает запись.
	svc.Invalidate("tok-a")
	if _, err := svc.Current(context.Background(), cred); err != nil {
		t.Fatalf("Current: %v", err)
	}
	if calls.Load() != 3 {
		t.Errorf("backend вызван %d раз, ожидалось 3 после Invalidate", calls.Load())
	}
}

func TestPrincipalUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Unauthenticated."}`))
	}))
	t.Cleanup(srv.Close)

	client := backend.New(srv.URL, time.Second, discardLogger())
	svc := NewPrincipalService(client, 10, time.Minute, discardLogger())

	_, err := svc.Current(context.Background(), backend.Credentials{Token: "stale"})
	if err != ErrUnauthorized {
		t.Errorf("err = %v, ожидался ErrUnauthorized", err)
	}
}
