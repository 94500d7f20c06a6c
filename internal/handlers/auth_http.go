package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/DanielKiedis/TallerMecanico/internal/service"
	"github.com/DanielKiedis/TallerMecanico/internal/utils"
)

type AuthHTTP struct {
	svc *service.AuthService
}

func NewAuthHTTP(s *service.AuthService) *AuthHTTP {
	return &AuthHTTP{svc: s}
}

// POST /login
func (h *AuthHTTP) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		token, u, err := h.svc.Login(r.Context(), in.Username, in.Password)
		if err != nil {
			utils.Error(w, http.StatusUnauthorized, "credenciales inválidas")
			return
		}

		utils.JSON(w, http.StatusOK, map[string]any{
			"token":    token,
			"role":     u.Role,
			"username": u.Username,
		})
	}
}
