package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DanielKiedis/TallerMecanico/internal/models"
)

type CatalogRepo struct{ db *pgxpool.Pool }

func NewCatalogRepo(db *pgxpool.Pool) *CatalogRepo { return &CatalogRepo{db: db} }

func (r *CatalogRepo) ListServices(ctx context.Context) ([]models.Service, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, nombre, descripcion, precio FROM services ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Service{}
	for rows.Next() {
		var s models.Service
		if err := rows.Scan(&s.ID, &s.Nombre, &s.Descripcion, &s.Precio); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *CatalogRepo) ListOffers(ctx context.Context) ([]models.Offer, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, titulo, descripcion, descuento, valido_hasta FROM offers ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Offer{}
	for rows.Next() {
		var o models.Offer
		if err := rows.Scan(&o.ID, &o.Titulo, &o.Descripcion, &o.Descuento, &o.ValidoHasta); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

var sampleServices = []models.Service{
	{Nombre: "Cambio de aceite sintético", Descripcion: "Cambio completo de aceite sintético premium y filtro. Incluye revisión de niveles de fluidos.", Precio: 899.99},
	{Nombre: "Alineación y balanceo láser", Descripcion: "Alineación de dirección computarizada y balanceo de llantas con tecnología láser. Incluye rotación.", Precio: 1199.99},
	{Nombre: "Servicio completo de frenos", Descripcion: "Cambio de balatas, discos, líquido de frenos y revisión de sistema hidráulico. Garantía 2 años.", Precio: 2499.99},
	{Nombre: "Reparación de suspensión", Descripcion: "Revisión y reparación completa del sistema de suspensión: amortiguadores, ballestas, bujes.", Precio: 3899.99},
	{Nombre: "Servicio de transmisión", Descripcion: "Cambio de fluido de transmisión automática o manual, ajuste y diagnóstico computarizado.", Precio: 3299.99},
}

var sampleOffers = []struct {
	titulo, descripcion, descuento, validoHasta string
}{
	{"Mantenimiento Primaveral", "¡Prepárate para la primavera! Paquete completo: cambio de aceite, alineación, revisión de aire acondicionado y diagnóstico gratis.", "25%", "2026-06-30"},
	{"Promo 2x1 Familiar", "Trae el auto de un familiar y el segundo servicio tiene 40% de descuento. Válido para servicios mayores a $1,500.", "40%", "2026-12-31"},
	{"Aceite Sintético Premium", "Cambio de aceite sintético total con 20% de descuento. Incluye filtro de aire y diagnóstico gratuito.", "20%", "2026-05-15"},
	{"Kit Frenos Seguridad Total", "Cambio completo de frenos + líquido + diagnóstico. ¡Incluye pastillas de cortesía para próximos cambios!", "30%", "2026-07-20"},
}

// SeedDefaults fills empty catalog tables with the sample rows the
// public site expects on a fresh install.
func (r *CatalogRepo) SeedDefaults(ctx context.Context) error {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM services`).Scan(&n); err != nil {
		return err
	}
	if n == 0 {
		for _, s := range sampleServices {
			if _, err := r.db.Exec(ctx, `
				INSERT INTO services (nombre, descripcion, precio) VALUES ($1,$2,$3)
			`, s.Nombre, s.Descripcion, s.Precio); err != nil {
				return err
			}
		}
	}
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM offers`).Scan(&n); err != nil {
		return err
	}
	if n == 0 {
		for _, o := range sampleOffers {
			if _, err := r.db.Exec(ctx, `
				INSERT INTO offers (titulo, descripcion, descuento, valido_hasta) VALUES ($1,$2,$3,$4)
			`, o.titulo, o.descripcion, o.descuento, o.validoHasta); err != nil {
				return err
			}
		}
	}
	return nil
}
