package dto

import "time"

// CreateFAQRequest entrada para crear una FAQ. Category y Order tienen valores por defecto.
type CreateFAQRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
	Category string `json:"category"`
	Order    *int   `json:"order"`
}

// UpdateFAQRequest actualización parcial de una FAQ.
type UpdateFAQRequest struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
	Category *string `json:"category"`
	Order    *int    `json:"order"`
}

// FAQResponse salida de una FAQ.
type FAQResponse struct {
	ID        int64     `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Category  string    `json:"category"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FAQEnvelope respuesta de una única FAQ.
type FAQEnvelope struct {
	FAQ FAQResponse `json:"faq"`
}

// FAQListResponse listado de FAQ ordenado por Order.
type FAQListResponse struct {
	FAQs []FAQResponse `json:"faqs"`
}
