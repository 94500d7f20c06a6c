package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/DanielKiedis/TallerMecanico/internal/models"
)

// Sender delivers one confirmation message.
type Sender interface {
	Send(req *models.ServiceRequest) error
}

// Dispatcher decouples notification from the write path: requests are
// enqueued after the store commit and delivered by a worker goroutine.
// Delivery is best-effort; failures are logged and never reach the
// client that created the request.
type Dispatcher struct {
	sender Sender
	queue  chan *models.ServiceRequest
	log    zerolog.Logger
}

func NewDispatcher(sender Sender, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		sender: sender,
		queue:  make(chan *models.ServiceRequest, 64),
		log:    log,
	}
}

// Enqueue hands a persisted request to the worker without blocking the
// response path. A full queue drops the notification.
func (d *Dispatcher) Enqueue(req *models.ServiceRequest) {
	select {
	case d.queue <- req:
	default:
		d.log.Warn().
			Int64("request_id", req.ID).
			Msg("notification queue full, confirmation dropped")
	}
}

// Run consumes the queue until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case req := <-d.queue:
			if err := d.sender.Send(req); err != nil {
				d.log.Error().
					Err(err).
					Int64("request_id", req.ID).
					Str("variant", string(req.Variant)).
					Msg("confirmation mail failed")
				continue
			}
			d.log.Info().
				Int64("request_id", req.ID).
				Str("variant", string(req.Variant)).
				Msg("confirmation mail sent")
		}
	}
}
