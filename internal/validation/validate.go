package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/DanielKiedis/TallerMecanico/internal/models"
)

type Code string

const (
	CodeMissingField Code = "missing_field"
	CodeInvalidEmail Code = "invalid_email"
	CodeInvalidPhone Code = "invalid_phone"
)

// FieldError reports which inbound field failed and why. It is the only
// failure mode of Normalize; anything else means the payload is fine.
type FieldError struct {
	Code  Code
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Code)
}

// RequestInput mirrors the public form bodies. Ubicacion and
// DescripcionFalla are tow-only, Descripcion is appointment-only.
type RequestInput struct {
	Nombre           string `json:"nombre"`
	Correo           string `json:"correo"`
	Telefono         string `json:"telefono"`
	MarcaCarro       string `json:"marca_carro"`
	ModeloCarro      string `json:"modelo_carro"`
	AnoCarro         int    `json:"año_carro"`
	Descripcion      string `json:"descripcion"`
	Ubicacion        string `json:"ubicacion"`
	DescripcionFalla string `json:"descripcion_falla"`
}

var (
	// local-part@domain.tld, no whitespace anywhere
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// digits plus common separators only
	phoneRe = regexp.MustCompile(`^[0-9\s\-()+]+$`)
)

func ValidEmail(s string) bool { return emailRe.MatchString(s) }

// ValidPhone accepts 10-20 characters of digits, spaces, hyphens,
// parentheses and plus signs.
func ValidPhone(s string) bool {
	if len(s) < 10 || len(s) > 20 {
		return false
	}
	return phoneRe.MatchString(s)
}

// Normalize trims and checks a raw form submission for the given variant.
// It is a pure check: no identity, status or timestamp is assigned here.
func Normalize(variant models.Variant, in RequestInput) (*models.ServiceRequest, *FieldError) {
	req := &models.ServiceRequest{
		Variant:          variant,
		Nombre:           strings.TrimSpace(in.Nombre),
		Correo:           strings.TrimSpace(in.Correo),
		Telefono:         strings.TrimSpace(in.Telefono),
		MarcaCarro:       strings.TrimSpace(in.MarcaCarro),
		ModeloCarro:      strings.TrimSpace(in.ModeloCarro),
		AnoCarro:         in.AnoCarro,
		Descripcion:      strings.TrimSpace(in.Descripcion),
		Ubicacion:        strings.TrimSpace(in.Ubicacion),
		DescripcionFalla: strings.TrimSpace(in.DescripcionFalla),
	}

	type reqField struct{ field, value string }
	required := []reqField{
		{"nombre", req.Nombre},
		{"correo", req.Correo},
		{"telefono", req.Telefono},
		{"marca_carro", req.MarcaCarro},
		{"modelo_carro", req.ModeloCarro},
	}
	switch variant {
	case models.VariantAppointment:
		required = append(required, reqField{"descripcion", req.Descripcion})
	case models.VariantTow:
		required = append(required,
			reqField{"ubicacion", req.Ubicacion},
			reqField{"descripcion_falla", req.DescripcionFalla},
		)
	}
	for _, f := range required {
		if f.value == "" {
			return nil, &FieldError{Code: CodeMissingField, Field: f.field}
		}
	}
	if req.AnoCarro <= 0 {
		return nil, &FieldError{Code: CodeMissingField, Field: "año_carro"}
	}
	if !ValidEmail(req.Correo) {
		return nil, &FieldError{Code: CodeInvalidEmail, Field: "correo"}
	}
	if !ValidPhone(req.Telefono) {
		return nil, &FieldError{Code: CodeInvalidPhone, Field: "telefono"}
	}
	return req, nil
}
