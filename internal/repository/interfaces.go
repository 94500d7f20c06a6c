package repository

import (
	"context"

	"github.com/DanielKiedis/TallerMecanico/internal/models"
)

type RequestRepository interface {
	// Create assigns identity, pending status and created_at, and fills
	// them back into r.
	Create(ctx context.Context, r *models.ServiceRequest) error
	// ListByVariant returns requests of one variant, newest first.
	ListByVariant(ctx context.Context, v models.Variant, limit, offset int) ([]models.ServiceRequest, error)
	// GetStatus returns "" (and no error) when the id does not exist.
	GetStatus(ctx context.Context, v models.Variant, id int64) (models.Status, error)
	// UpdateStatus returns the number of rows written (0 or 1).
	UpdateStatus(ctx context.Context, v models.Variant, id int64, s models.Status) (int64, error)
}

type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, username, role, passwordHash string) (int64, error)
	// Update never moves an admin row off the admin role; passwordHash ""
	// leaves the stored credential untouched. Returns rows written.
	Update(ctx context.Context, id int64, username, role, passwordHash string) (int64, error)
	// Delete refuses admin rows and reports 0 for them.
	Delete(ctx context.Context, id int64) (int64, error)
	// GetByUsername returns (nil, "", nil) when the user does not exist.
	GetByUsername(ctx context.Context, username string) (*models.User, string, error)
	// EnsureAdmin seeds the admin account if no admin exists yet.
	EnsureAdmin(ctx context.Context, username, passwordHash string) error
}

type CatalogRepository interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	ListOffers(ctx context.Context) ([]models.Offer, error)
	// SeedDefaults inserts the sample catalog on an empty database.
	SeedDefaults(ctx context.Context) error
}
