package models

import "time"

// Service is a workshop catalog entry shown on the public site.
type Service struct {
	ID          int64   `json:"id"`
	Nombre      string  `json:"nombre"`
	Descripcion string  `json:"descripcion"`
	Precio      float64 `json:"precio"`
}

// Offer is a time-limited promotion shown on the public site.
type Offer struct {
	ID          int64     `json:"id"`
	Titulo      string    `json:"titulo"`
	Descripcion string    `json:"descripcion"`
	Descuento   string    `json:"descuento"`
	ValidoHasta time.Time `json:"valido_hasta"`
}
