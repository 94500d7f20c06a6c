package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/DanielKiedis/TallerMecanico/internal/models"
	"github.com/DanielKiedis/TallerMecanico/internal/service"
	"github.com/DanielKiedis/TallerMecanico/internal/utils"
)

const testSecret = "test-secret"

type fakeUserRepo struct {
	users  map[string]*models.User // by username
	hashes map[string]string
}

func newFakeUserRepo(t *testing.T) *fakeUserRepo {
	t.Helper()
	hash, err := utils.HashPassword("admin123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return &fakeUserRepo{
		users: map[string]*models.User{
			"admin": {ID: 1, Username: "admin", Role: models.RoleAdmin, CreatedAt: time.Now(), UpdatedAt: time.Now()},
		},
		hashes: map[string]string{"admin": hash},
	}
}

func (f *fakeUserRepo) List(_ context.Context) ([]models.User, error) {
	out := []models.User{}
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) Create(_ context.Context, username, role, passwordHash string) (int64, error) {
	id := int64(len(f.users) + 1)
	f.users[username] = &models.User{ID: id, Username: username, Role: role}
	f.hashes[username] = passwordHash
	return id, nil
}

func (f *fakeUserRepo) Update(_ context.Context, id int64, username, role, passwordHash string) (int64, error) {
	for _, u := range f.users {
		if u.ID == id {
			if u.Role == models.RoleAdmin {
				role = models.RoleAdmin
			}
			u.Username = username
			u.Role = role
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) (int64, error) {
	for name, u := range f.users {
		if u.ID == id {
			if u.Role == models.RoleAdmin {
				return 0, nil
			}
			delete(f.users, name)
			delete(f.hashes, name)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, string, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, "", nil
	}
	return u, f.hashes[username], nil
}

func (f *fakeUserRepo) EnsureAdmin(_ context.Context, _, _ string) error { return nil }

func TestLoginIssuesToken(t *testing.T) {
	repo := newFakeUserRepo(t)
	h := NewAuthHTTP(service.NewAuthService(repo, testSecret))

	rec := doJSON(t, h.Login(), http.MethodPost, "/login", map[string]string{
		"username": "admin",
		"password": "admin123",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var out struct {
		Token    string `json:"token"`
		Role     string `json:"role"`
		Username string `json:"username"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Role != models.RoleAdmin || out.Username != "admin" {
		t.Fatalf("unexpected login payload: %+v", out)
	}
	claims, err := utils.ParseJWT(testSecret, out.Token)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.UserID != 1 || claims.Role != models.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo(t)
	h := NewAuthHTTP(service.NewAuthService(repo, testSecret))

	rec := doJSON(t, h.Login(), http.MethodPost, "/login", map[string]string{
		"username": "admin",
		"password": "nope",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var out map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, ok := out["token"]; ok {
		t.Fatalf("no token may be issued on bad credentials")
	}
}

func TestLoginUnknownUser(t *testing.T) {
	repo := newFakeUserRepo(t)
	h := NewAuthHTTP(service.NewAuthService(repo, testSecret))

	rec := doJSON(t, h.Login(), http.MethodPost, "/login", map[string]string{
		"username": "ghost",
		"password": "whatever",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
