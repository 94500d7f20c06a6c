package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/DanielKiedis/TallerMecanico/internal/models"
	"github.com/DanielKiedis/TallerMecanico/internal/repository"
	"github.com/DanielKiedis/TallerMecanico/internal/service"
	"github.com/DanielKiedis/TallerMecanico/internal/utils"
	"github.com/DanielKiedis/TallerMecanico/internal/validation"
	"github.com/DanielKiedis/TallerMecanico/internal/workflow"
)

// RequestHTTP wires the public intake forms and the admin request views.
type RequestHTTP struct {
	intake   *service.IntakeService
	requests repository.RequestRepository
	engine   *workflow.Engine
}

func NewRequestHTTP(intake *service.IntakeService, requests repository.RequestRepository, engine *workflow.Engine) *RequestHTTP {
	return &RequestHTTP{intake: intake, requests: requests, engine: engine}
}

func createdMessage(variant models.Variant) string {
	if variant == models.VariantTow {
		return "Solicitud de grúa registrada"
	}
	return "Cita creada y correo enviado"
}

// POST /requests/appointments | /requests/tows
func (h *RequestHTTP) Create(variant models.Variant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in validation.RequestInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		req, err := h.intake.Create(r.Context(), variant, in)
		if err != nil {
			var ferr *validation.FieldError
			if errors.As(err, &ferr) {
				utils.FieldError(w, http.StatusBadRequest, string(ferr.Code), ferr.Field, ferr.Error())
				return
			}
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{
			"id":      req.ID,
			"message": createdMessage(variant),
		})
	}
}

// GET /admin/requests/appointments | /admin/requests/tows
func (h *RequestHTTP) List(variant models.Variant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qv := r.URL.Query()
		limit := utils.QueryInt(qv, "limit", 100)
		offset := utils.QueryInt(qv, "offset", 0)

		items, err := h.requests.ListByVariant(r.Context(), variant, limit, offset)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, items)
	}
}

// PUT /admin/requests/appointments/{id} | /admin/requests/tows/{id}
func (h *RequestHTTP) UpdateStatus(variant models.Variant) http.HandlerFunc {
	type inDTO struct {
		Estado string `json:"estado"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id <= 0 {
			utils.Error(w, http.StatusBadRequest, "invalid id")
			return
		}
		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		target := models.Status(strings.TrimSpace(in.Estado))

		affected, err := h.engine.Transition(r.Context(), variant, id, target)
		if err != nil {
			switch {
			case errors.Is(err, workflow.ErrUnknownStatus):
				utils.Error(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, workflow.ErrInvalidTransition):
				utils.Error(w, http.StatusConflict, err.Error())
			default:
				utils.Error(w, http.StatusInternalServerError, err.Error())
			}
			return
		}
		utils.JSON(w, http.StatusOK, map[string]int64{"affectedRows": affected})
	}
}
