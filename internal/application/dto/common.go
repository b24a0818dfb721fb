package dto

// ErrorResponse cuerpo de error HTTP: {"error": "...", ...extra}.
type ErrorResponse struct {
	Error           string `json:"error"`
	Code            string `json:"code,omitempty"`
	Field           string `json:"field,omitempty"`
	Article         string `json:"article,omitempty"`
	StockDisponible *int   `json:"stockDisponible,omitempty"`
}

// MessageResponse confirmación de operaciones sin cuerpo (borrados).
type MessageResponse struct {
	Message string `json:"message"`
}
