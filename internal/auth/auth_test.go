package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, key []byte, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestAuthMiddlewarePutsUserOnContext(t *testing.T) {
	key := []byte("test-key")
	env := &Authenv{JWTkey: key}
	tok := signedToken(t, key, jwt.MapClaims{
		"user_id": 42,
		"login":   "mira",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	var gotID int
	var gotLogin string
	called := false
	h := env.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		gotID, _ = UserID(r.Context())
		gotLogin, _ = UserLogin(r.Context())
	}))

	req := httptest.NewRequest("GET", "/api/user/tools", nil)
	req.AddCookie(&http.Cookie{Name: "session_token", Value: tok})
	h.ServeHTTP(httptest.NewRecorder(), req)

	if !called {
		t.Fatal("middleware rejected a valid session")
	}
	if gotID != 42 || gotLogin != "mira" {
		t.Fatalf("context carries %d/%q, want 42/%q", gotID, gotLogin, "mira")
	}
}

func TestAuthMiddlewareRedirectsWithoutCookie(t *testing.T) {
	env := &Authenv{JWTkey: []byte("test-key")}
	h := env.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a session")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/api/user/tools", nil))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("want a redirect to the login page, got %d", rec.Code)
	}
}

func TestAuthMiddlewareRejectsForgedToken(t *testing.T) {
	env := &Authenv{JWTkey: []byte("real-key")}
	tok := signedToken(t, []byte("other-key"), jwt.MapClaims{
		"user_id": 1,
		"login":   "mira",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	h := env.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for a forged token")
	}))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/user/tools", nil)
	req.AddCookie(&http.Cookie{Name: "session_token", Value: tok})
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("want a redirect to the login page, got %d", rec.Code)
	}
}

func TestUserIDAbsentFromBareContext(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if _, ok := UserID(req.Context()); ok {
		t.Fatal("bare context must not carry a user id")
	}
}
