package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/DanielKiedis/TallerMecanico/internal/models"
	"github.com/DanielKiedis/TallerMecanico/internal/repository"
	"github.com/DanielKiedis/TallerMecanico/internal/utils"
)

// UserHTTP exposes the admin user-management endpoints.
type UserHTTP struct {
	repo repository.UserRepository
}

func NewUserHTTP(r repository.UserRepository) *UserHTTP {
	return &UserHTTP{repo: r}
}

// GET /admin/users
func (h *UserHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := h.repo.List(r.Context())
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, users)
	}
}

// POST /admin/users
func (h *UserHTTP) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Username string `json:"username"`
			Password string `json:"password"`
			Role     string `json:"role"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		in.Username = strings.TrimSpace(in.Username)
		if in.Username == "" || in.Password == "" {
			utils.Error(w, http.StatusBadRequest, "username and password are required")
			return
		}
		role := strings.TrimSpace(in.Role)
		if role != models.RoleAdmin {
			role = models.RoleUser
		}

		hash, err := utils.HashPassword(in.Password)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		id, err := h.repo.Create(r.Context(), in.Username, role, hash)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, map[string]int64{"id": id})
	}
}

// PUT /admin/users/{id}
func (h *UserHTTP) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id <= 0 {
			utils.Error(w, http.StatusBadRequest, "invalid id")
			return
		}
		var in struct {
			Username string `json:"username"`
			Password string `json:"password"`
			Role     string `json:"role"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		in.Username = strings.TrimSpace(in.Username)
		if in.Username == "" {
			utils.Error(w, http.StatusBadRequest, "username is required")
			return
		}
		role := strings.TrimSpace(in.Role)
		if role != models.RoleAdmin {
			role = models.RoleUser
		}

		hash := ""
		if in.Password != "" {
			if hash, err = utils.HashPassword(in.Password); err != nil {
				utils.Error(w, http.StatusInternalServerError, err.Error())
				return
			}
		}
		affected, err := h.repo.Update(r.Context(), id, in.Username, role, hash)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, map[string]int64{"affectedRows": affected})
	}
}

// DELETE /admin/users/{id}
// Admin rows are never deleted; the affected count is 0 for them.
func (h *UserHTTP) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id <= 0 {
			utils.Error(w, http.StatusBadRequest, "invalid id")
			return
		}
		affected, err := h.repo.Delete(r.Context(), id)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, map[string]int64{"affectedRows": affected})
	}
}
