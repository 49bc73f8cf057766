package helpers

import (
	"encoding/json"
	"net/http"
)

// CORS header values shared by every response and preflight reply. The API is
// deliberately open to any origin.
const (
	corsAllowOrigin  = "*"
	corsAllowMethods = "GET, POST, PUT, DELETE, OPTIONS"
	corsAllowHeaders = "Content-Type, Authorization, X-Requested-With"
	corsMaxAge       = "86400"
)

// ErrorEnvelope is the uniform error body: {success:false, error:<message>}.
// swagger:model ErrorEnvelope
type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func setCORS(h http.Header) {
	h.Set("Access-Control-Allow-Origin", corsAllowOrigin)
	h.Set("Access-Control-Allow-Methods", corsAllowMethods)
	h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
}

// WriteJSON writes v as the JSON response body with the shared CORS headers.
// Every success payload carries its own success field.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	setCORS(w.Header())
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes the {success:false, error} envelope with statusCode.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorEnvelope{Success: false, Error: message})
}

// Preflight answers an OPTIONS request with an empty 200 body and the
// preflight headers. Registered once per route path.
func Preflight(w http.ResponseWriter, r *http.Request) {
	setCORS(w.Header())
	w.Header().Set("Access-Control-Max-Age", corsMaxAge)
	w.WriteHeader(http.StatusOK)
}
