package transport

import (
	"net/http"
	"testing"

	"stylevault/internal/domain"
)

func TestProfileNotFound(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodGet, "/api/profile/user-1", "user-1", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 before first save, got %d", w.Code)
	}
}

func TestProfileSaveAndGet(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodPut, "/api/profile/user-1", "user-1", map[string]string{
		"name":  "Ada Lovelace",
		"email": "ada@example.com",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on save, got %d: %s", w.Code, w.Body.String())
	}

	w = api.do(t, http.MethodGet, "/api/profile/user-1", "user-1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on get, got %d", w.Code)
	}

	var profile domain.Profile
	decodeBody(t, w, &profile)
	if profile.Name != "Ada Lovelace" || profile.Email != "ada@example.com" {
		t.Errorf("unexpected profile: %+v", profile)
	}
}

func TestProfileSaveValidation(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodPut, "/api/profile/user-1", "user-1", map[string]string{
		"name":  "Ada",
		"email": "not-an-email",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad email, got %d", w.Code)
	}
}
