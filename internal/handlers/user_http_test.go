package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/DanielKiedis/TallerMecanico/internal/models"
)

func newUserRouter(repo *fakeUserRepo) http.Handler {
	h := NewUserHTTP(repo)
	r := chi.NewRouter()
	r.Get("/admin/users", h.List())
	r.Post("/admin/users", h.Create())
	r.Put("/admin/users/{id}", h.Update())
	r.Delete("/admin/users/{id}", h.Delete())
	return r
}

func affectedRows(t *testing.T, body []byte) int64 {
	t.Helper()
	var out struct {
		AffectedRows int64 `json:"affectedRows"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out.AffectedRows
}

func TestDeleteAdminIsRefused(t *testing.T) {
	repo := newFakeUserRepo(t)
	h := newUserRouter(repo)

	rec := doJSON(t, h, http.MethodDelete, "/admin/users/1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if n := affectedRows(t, rec.Body.Bytes()); n != 0 {
		t.Fatalf("deleting an admin must report 0 rows, got %d", n)
	}
	if repo.users["admin"] == nil {
		t.Fatalf("admin row must survive")
	}
}

func TestDeleteRegularUser(t *testing.T) {
	repo := newFakeUserRepo(t)
	h := newUserRouter(repo)

	rec := doJSON(t, h, http.MethodPost, "/admin/users", map[string]string{
		"username": "paco",
		"password": "secreto1",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("create user: got %d", rec.Code)
	}
	var created struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if repo.users["paco"].Role != models.RoleUser {
		t.Fatalf("unspecified role must default to user, got %s", repo.users["paco"].Role)
	}

	rec = doJSON(t, h, http.MethodDelete, "/admin/users/2", nil)
	if n := affectedRows(t, rec.Body.Bytes()); n != 1 {
		t.Fatalf("expected 1 row deleted, got %d", n)
	}
}

func TestUpdateCannotDemoteAdmin(t *testing.T) {
	repo := newFakeUserRepo(t)
	h := newUserRouter(repo)

	rec := doJSON(t, h, http.MethodPut, "/admin/users/1", map[string]string{
		"username": "admin",
		"role":     "user",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if repo.users["admin"].Role != models.RoleAdmin {
		t.Fatalf("admin role must not change, got %s", repo.users["admin"].Role)
	}
}

func TestCreateUserRequiresCredentials(t *testing.T) {
	repo := newFakeUserRepo(t)
	h := newUserRouter(repo)

	rec := doJSON(t, h, http.MethodPost, "/admin/users", map[string]string{"username": "solo"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without password, got %d", rec.Code)
	}
}
