package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/DanielKiedis/TallerMecanico/internal/models"
	"github.com/DanielKiedis/TallerMecanico/internal/repository"
	"github.com/DanielKiedis/TallerMecanico/internal/validation"
)

// Notifier is the slice of the dispatcher the intake path needs.
type Notifier interface {
	Enqueue(req *models.ServiceRequest)
}

// IntakeService runs the create pipeline: validate, persist, then hand
// the committed record to the notifier. Enqueue happens strictly after
// the insert returns so the notification carries the generated identity.
type IntakeService struct {
	requests repository.RequestRepository
	notifier Notifier
	log      zerolog.Logger
}

func NewIntakeService(requests repository.RequestRepository, notifier Notifier, log zerolog.Logger) *IntakeService {
	return &IntakeService{requests: requests, notifier: notifier, log: log}
}

// Create validates and persists a request of the given variant. A
// *validation.FieldError return means nothing was written; any other
// error is a storage failure. Notification outcome never affects the
// returned record.
func (s *IntakeService) Create(ctx context.Context, variant models.Variant, in validation.RequestInput) (*models.ServiceRequest, error) {
	req, ferr := validation.Normalize(variant, in)
	if ferr != nil {
		return nil, ferr
	}
	if err := s.requests.Create(ctx, req); err != nil {
		return nil, err
	}
	s.log.Info().
		Int64("request_id", req.ID).
		Str("variant", string(variant)).
		Msg("request created")
	s.notifier.Enqueue(req)
	return req, nil
}
