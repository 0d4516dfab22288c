// Package apierror provides the error envelopes returned by the API.
// The browser client reads `message` from every non-2xx response.
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Message string `json:"message"`
}

func New(msg string) *APIError {
	return &APIError{Message: msg}
}

// ValidationError wraps field-level messages.
type ValidationError struct {
	Message string            `json:"message"`
	Errores map[string]string `json:"errores"`
}

// NewValidation builds the envelope; an empty msg falls back to a generic one.
func NewValidation(msg string, fields map[string]string) *ValidationError {
	if msg == "" {
		msg = "Error de validación"
	}
	return &ValidationError{Message: msg, Errores: fields}
}
