package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/DanielKiedis/TallerMecanico/internal/config"
	"github.com/DanielKiedis/TallerMecanico/internal/models"
	"github.com/DanielKiedis/TallerMecanico/internal/utils"
)

func guarded(cfg config.Config) http.Handler {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return WithAuth(zerolog.Nop(), cfg)(RequireRoles(models.RoleAdmin)(ok))
}

func TestGuardFailsClosed(t *testing.T) {
	cfg := config.Config{SessionSecret: "s3cret"}
	h := guarded(cfg)

	cases := []struct {
		name  string
		token string
	}{
		{"no token", ""},
		{"garbage token", "not-a-jwt"},
		{"legacy sentinel", "admin-token"},
	}
	for _, c := range cases {
		req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
		if c.token != "" {
			req.Header.Set("Authorization", c.token)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("%s: expected 403, got %d", c.name, rec.Code)
		}
	}
}

func TestGuardRejectsNonAdminRole(t *testing.T) {
	cfg := config.Config{SessionSecret: "s3cret"}
	h := guarded(cfg)

	tok, err := utils.SignJWT(cfg.SessionSecret, 2, "paco", models.RoleUser, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for role user, got %d", rec.Code)
	}
}

func TestGuardAllowsAdmin(t *testing.T) {
	cfg := config.Config{SessionSecret: "s3cret"}
	h := guarded(cfg)

	tok, err := utils.SignJWT(cfg.SessionSecret, 1, "admin", models.RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	// Both the Bearer form and the bare header the admin page sends.
	for _, header := range []string{"Bearer " + tok, tok} {
		req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 for admin token (%q), got %d", header, rec.Code)
		}
	}
}

func TestGuardRejectsExpiredToken(t *testing.T) {
	cfg := config.Config{SessionSecret: "s3cret"}
	h := guarded(cfg)

	tok, err := utils.SignJWT(cfg.SessionSecret, 1, "admin", models.RoleAdmin, -time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for expired token, got %d", rec.Code)
	}
}
