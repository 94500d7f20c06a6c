package models

import "time"

// Variant discriminates the two kinds of service request.
type Variant string

const (
	VariantAppointment Variant = "appointment"
	VariantTow         Variant = "tow"
)

// Status is persisted as text. Confirmed applies to appointments only,
// EnRoute to tow requests only.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusEnRoute   Status = "en_route"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ServiceRequest is a customer-submitted appointment or tow request.
// Appointment rows carry Descripcion; tow rows carry Ubicacion and
// DescripcionFalla. ID and CreatedAt are assigned by the store and
// never change afterwards.
type ServiceRequest struct {
	ID               int64     `json:"id"`
	Variant          Variant   `json:"-"`
	Nombre           string    `json:"nombre"`
	Correo           string    `json:"correo"`
	Telefono         string    `json:"telefono"`
	MarcaCarro       string    `json:"marca_carro"`
	ModeloCarro      string    `json:"modelo_carro"`
	AnoCarro         int       `json:"año_carro"`
	Descripcion      string    `json:"descripcion,omitempty"`
	Ubicacion        string    `json:"ubicacion,omitempty"`
	DescripcionFalla string    `json:"descripcion_falla,omitempty"`
	Estado           Status    `json:"estado"`
	CreatedAt        time.Time `json:"fecha"`
}
