package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func setTestAccessKey(t *testing.T, phrase string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(phrase), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash test phrase: %v", err)
	}
	t.Setenv("ACCESS_KEY_HASH", string(hash))
	LoadAccessKey()
}

func gatedHandler() http.Handler {
	return AccessKeyMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestAccessKeyMiddlewareAcceptsHeader(t *testing.T) {
	setTestAccessKey(t, "ookii")

	req := httptest.NewRequest("GET", "/events/nomi123", nil)
	req.Header.Set(AccessKeyHeader, "ookii")
	w := httptest.NewRecorder()

	gatedHandler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Correct key in header should pass, got %d", w.Code)
	}
}

func TestAccessKeyMiddlewareAcceptsQueryParam(t *testing.T) {
	setTestAccessKey(t, "ookii")

	// Calendar apps can't set headers on subscription fetches
	req := httptest.NewRequest("GET", "/events/nomi123/calendar.ics?key=ookii", nil)
	w := httptest.NewRecorder()

	gatedHandler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Correct key in query should pass, got %d", w.Code)
	}
}

func TestAccessKeyMiddlewareRejectsWrongKey(t *testing.T) {
	setTestAccessKey(t, "ookii")

	req := httptest.NewRequest("GET", "/events/nomi123", nil)
	req.Header.Set(AccessKeyHeader, "chiisai")
	w := httptest.NewRecorder()

	gatedHandler().ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Wrong key should 401, got %d", w.Code)
	}
}

func TestAccessKeyMiddlewareRejectsMissingKey(t *testing.T) {
	setTestAccessKey(t, "ookii")

	req := httptest.NewRequest("GET", "/events/nomi123", nil)
	w := httptest.NewRecorder()

	gatedHandler().ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Missing key should 401, got %d", w.Code)
	}
}

func TestAccessKeyMiddlewareDevModeOpen(t *testing.T) {
	t.Setenv("ACCESS_KEY_HASH", "")
	LoadAccessKey()

	req := httptest.NewRequest("GET", "/events/nomi123", nil)
	w := httptest.NewRecorder()

	gatedHandler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("No configured hash means dev mode, got %d", w.Code)
	}
}
