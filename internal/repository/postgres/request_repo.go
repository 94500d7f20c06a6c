package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DanielKiedis/TallerMecanico/internal/models"
)

type RequestRepo struct{ db *pgxpool.Pool }

func NewRequestRepo(db *pgxpool.Pool) *RequestRepo { return &RequestRepo{db: db} }

// Create persists the request in one statement and reads back the
// generated identity, default status and creation timestamp.
func (r *RequestRepo) Create(ctx context.Context, req *models.ServiceRequest) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO service_requests
			(variant, nombre, correo, telefono, marca_carro, modelo_carro, ano_carro,
			 descripcion, ubicacion, descripcion_falla, estado)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,'pending')
		RETURNING id, estado, created_at
	`,
		req.Variant, req.Nombre, req.Correo, req.Telefono,
		req.MarcaCarro, req.ModeloCarro, req.AnoCarro,
		req.Descripcion, req.Ubicacion, req.DescripcionFalla,
	).Scan(&req.ID, &req.Estado, &req.CreatedAt)
}

func (r *RequestRepo) ListByVariant(ctx context.Context, v models.Variant, limit, offset int) ([]models.ServiceRequest, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.db.Query(ctx, `
		SELECT id, variant, nombre, correo, telefono, marca_carro, modelo_carro,
		       ano_carro, descripcion, ubicacion, descripcion_falla, estado, created_at
		FROM service_requests
		WHERE variant = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, v, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.ServiceRequest{}
	for rows.Next() {
		var req models.ServiceRequest
		if err := rows.Scan(
			&req.ID, &req.Variant, &req.Nombre, &req.Correo, &req.Telefono,
			&req.MarcaCarro, &req.ModeloCarro, &req.AnoCarro,
			&req.Descripcion, &req.Ubicacion, &req.DescripcionFalla,
			&req.Estado, &req.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

func (r *RequestRepo) GetStatus(ctx context.Context, v models.Variant, id int64) (models.Status, error) {
	var s models.Status
	err := r.db.QueryRow(ctx, `
		SELECT estado FROM service_requests WHERE variant = $1 AND id = $2
	`, v, id).Scan(&s)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return s, nil
}

// UpdateStatus writes any enumerated status unconditionally; transition
// legality is the workflow engine's concern, not the store's.
func (r *RequestRepo) UpdateStatus(ctx context.Context, v models.Variant, id int64, s models.Status) (int64, error) {
	ct, err := r.db.Exec(ctx, `
		UPDATE service_requests SET estado = $1 WHERE variant = $2 AND id = $3
	`, s, v, id)
	if err != nil {
		return 0, err
	}
	return ct.RowsAffected(), nil
}
