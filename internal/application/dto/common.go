package dto

import "github.com/shopspring/decimal"

func init() {
	// Precios y totales salen como número JSON (18500.5), no como string.
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse cuerpo de error HTTP. Error siempre va poblado con un mensaje legible.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MessageResponse respuesta simple con mensaje (logout, etc.).
type MessageResponse struct {
	Message string `json:"message"`
}

// DeleteResponse respuesta de un DELETE exitoso.
type DeleteResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
