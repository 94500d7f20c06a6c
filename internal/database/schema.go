package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         BIGSERIAL PRIMARY KEY,
		username   VARCHAR(50) UNIQUE NOT NULL,
		password_h VARCHAR(100) NOT NULL,
		role       VARCHAR(20) NOT NULL DEFAULT 'user',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS service_requests (
		id                BIGSERIAL PRIMARY KEY,
		variant           VARCHAR(20) NOT NULL,
		nombre            VARCHAR(100) NOT NULL,
		correo            VARCHAR(100) NOT NULL,
		telefono          VARCHAR(20) NOT NULL,
		marca_carro       VARCHAR(50) NOT NULL,
		modelo_carro      VARCHAR(50) NOT NULL,
		ano_carro         INT NOT NULL,
		descripcion       TEXT NOT NULL DEFAULT '',
		ubicacion         TEXT NOT NULL DEFAULT '',
		descripcion_falla TEXT NOT NULL DEFAULT '',
		estado            VARCHAR(20) NOT NULL DEFAULT 'pending',
		created_at        TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_service_requests_variant_created
		ON service_requests (variant, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS services (
		id          BIGSERIAL PRIMARY KEY,
		nombre      VARCHAR(100) NOT NULL,
		descripcion TEXT NOT NULL,
		precio      NUMERIC(10,2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS offers (
		id           BIGSERIAL PRIMARY KEY,
		titulo       VARCHAR(100) NOT NULL,
		descripcion  TEXT NOT NULL,
		descuento    VARCHAR(20) NOT NULL,
		valido_hasta DATE NOT NULL
	)`,
}

// Migrate creates missing tables; it never drops or alters existing ones.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
