package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/employee-registry/internal/validation"
)

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Always false
	// default: false
	Status bool `json:"status"`

	// Error message
	// default: Employee not found
	Message string `json:"message"`
}

// ValidationErrorResponse lists every rejected field of a request
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	Errors []validation.FieldError `json:"errors"`
}

// MessageResponse represents a successful response carrying only a message
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	// default: Employee details updated successfully
	Message string `json:"message"`
}

// writeJSON writes v as the JSON body with the given status code.
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, ErrorResponse{Status: false, Message: message})
}
