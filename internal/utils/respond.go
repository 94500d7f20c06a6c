package utils

import (
	"encoding/json"
	"net/http"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"error": msg})
}

// FieldError reports a validation failure with its machine-readable code.
func FieldError(w http.ResponseWriter, status int, code, field, msg string) {
	JSON(w, status, map[string]string{"error": msg, "code": code, "field": field})
}
