package session

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func requestWithCookies(cookies ...*http.Cookie) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	return r
}

// unsignedJWT собирает JWT с заданным exp без подписи.
func unsignedJWT(exp time.Time) string {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))
	payload, _ := json.Marshal(map[string]any{"exp": exp.Unix(), "sub": "7"})
	return fmt.Sprintf("%s.%s.", header, base64.RawURLEncoding.EncodeToString(payload))
}

func TestFromRequestNoCookie(t *testing.T) {
	s := FromRequest(requestWithCookies())
	if s.Valid(time.Now()) {
		t.Error("пустая сессия не может быть валидной")
	}
}

func TestFromRequestExpirationCookie(t *testing.T) {
	exp := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	s := FromRequest(requestWithCookies(
		&http.Cookie{Name: "token", Value: "opaque-token"},
		&http.Cookie{Name: "token_expiration", Value: exp.Format(time.RFC3339)},
	))
	if !s.Valid(time.Now()) {
		t.Error("сессия со сроком в будущем должна быть валидной")
	}
	if !s.ExpiresAt.Equal(exp) {
		t.Errorf("ExpiresAt = %v, ожидалось %v", s.ExpiresAt, exp)
	}
}

func TestFromRequestExpired(t *testing.T) {
	exp := time.Now().Add(-time.Minute).UTC()
	s := FromRequest(requestWithCookies(
		&http.Cookie{Name: "token", Value: "opaque-token"},
		&http.Cookie{Name: "token_expiration", Value: exp.Format(time.RFC3339)},
	))
	if s.Valid(time.Now()) {
		t.Error("просроченная сессия валидной быть не может")
	}
}

func TestFromRequestJWTFallback(t *testing.T) {
	exp := time.Now().Add(30 * time.Minute)
	s := FromRequest(requestWithCookies(
		&http.Cookie{Name: "token", Value: unsignedJWT(exp)},
	))
	if !s.Valid(time.Now()) {
		t.Error("срок из claim'а exp должен давать валидную сессию")
	}
	if s.ExpiresAt.Unix() != exp.Unix() {
		t.Errorf("ExpiresAt = %v, ожидалось %v", s.ExpiresAt, exp)
	}
}

func TestFromRequestUnparsableToken(t *testing.T) {
	s := FromRequest(requestWithCookies(
		&http.Cookie{Name: "token", Value: "not-a-jwt"},
	))
	// Токен есть, но срок неизвестен — считаем сессию невалидной.
	if s.Valid(time.Now()) {
		t.Error("сессия без срока действия не валидна")
	}
}

func TestWriteAndClear(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, "tok", time.Now().Add(time.Hour), false)
	cookies := rec.Result().Cookies()
	if len(cookies) != 2 {
		t.Fatalf("выставлено %d cookie, ожидалось 2", len(cookies))
	}
	for _, c := range cookies {
		if !c.HttpOnly {
			t.Errorf("cookie %s должна быть HttpOnly", c.Name)
		}
	}

	rec = httptest.NewRecorder()
	Clear(rec)
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge != -1 {
			t.Errorf("cookie %s не стёрта (MaxAge=%d)", c.Name, c.MaxAge)
		}
	}
}
