package workflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanielKiedis/TallerMecanico/internal/models"
)

var (
	ErrUnknownStatus     = errors.New("unknown status for variant")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// allowed is the per-variant transition table. Completed and cancelled
// are terminal for both variants.
var allowed = map[models.Variant]map[models.Status][]models.Status{
	models.VariantAppointment: {
		models.StatusPending:   {models.StatusConfirmed, models.StatusCancelled},
		models.StatusConfirmed: {models.StatusCompleted, models.StatusCancelled},
		models.StatusCompleted: {},
		models.StatusCancelled: {},
	},
	models.VariantTow: {
		models.StatusPending:   {models.StatusEnRoute, models.StatusCancelled},
		models.StatusEnRoute:   {models.StatusCompleted, models.StatusCancelled},
		models.StatusCompleted: {},
		models.StatusCancelled: {},
	},
}

// Known reports whether s is an enumerated status of the given variant.
func Known(variant models.Variant, s models.Status) bool {
	_, ok := allowed[variant][s]
	return ok
}

// AllowedNext returns the statuses reachable from current in one step.
func AllowedNext(variant models.Variant, current models.Status) []models.Status {
	return allowed[variant][current]
}

// CanTransition reports whether from -> to is permitted. Re-applying the
// current status is treated as a no-op and allowed.
func CanTransition(variant models.Variant, from, to models.Status) bool {
	if from == to {
		return true
	}
	for _, s := range AllowedNext(variant, from) {
		if s == to {
			return true
		}
	}
	return false
}

// StatusStore is the slice of the request store the engine needs.
type StatusStore interface {
	GetStatus(ctx context.Context, variant models.Variant, id int64) (models.Status, error)
	UpdateStatus(ctx context.Context, variant models.Variant, id int64, s models.Status) (int64, error)
}

// Engine applies admin-driven status changes, enforcing the transition
// table server-side before writing. The underlying store itself accepts
// any enumerated status; the engine is the gate.
type Engine struct {
	store StatusStore
}

func NewEngine(store StatusStore) *Engine {
	return &Engine{store: store}
}

// Transition moves request id of the given variant to target and returns
// the number of rows written. A missing id yields (0, nil), mirroring the
// soft not-found behavior of the update statement.
func (e *Engine) Transition(ctx context.Context, variant models.Variant, id int64, target models.Status) (int64, error) {
	if !Known(variant, target) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownStatus, target)
	}
	current, err := e.store.GetStatus(ctx, variant, id)
	if err != nil {
		return 0, err
	}
	if current == "" {
		return 0, nil
	}
	if !CanTransition(variant, current, target) {
		return 0, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, target)
	}
	return e.store.UpdateStatus(ctx, variant, id, target)
}
