package dto

import "time"

// CreateSupportTicketRequest entrada del formulario de contacto.
type CreateSupportTicketRequest struct {
	UserID   int64  `json:"userId"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Subject  string `json:"subject" validate:"required"`
	Message  string `json:"message" validate:"required"`
	Category string `json:"category" validate:"required"`
}

// UpdateSupportTicketRequest actualización parcial de un ticket (admin).
type UpdateSupportTicketRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Subject  *string `json:"subject"`
	Message  *string `json:"message"`
	Category *string `json:"category"`
	Status   *string `json:"status"`
}

// SupportTicketResponse salida de un ticket.
type SupportTicketResponse struct {
	ID        int64     `json:"id"`
	UserID    *int64    `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Category  string    `json:"category"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SupportTicketEnvelope respuesta de un único ticket.
type SupportTicketEnvelope struct {
	Ticket SupportTicketResponse `json:"ticket"`
}

// SupportTicketListResponse listado de tickets.
type SupportTicketListResponse struct {
	Tickets []SupportTicketResponse `json:"tickets"`
}
