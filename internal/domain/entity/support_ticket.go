package entity

import "time"

// Estados de un ticket de soporte.
const (
	TicketStatusAbierto   = "abierto"
	TicketStatusEnProceso = "en_proceso"
	TicketStatusResuelto  = "resuelto"
	TicketStatusCerrado   = "cerrado"
)

// ValidTicketStatus indica si status es un estado de ticket soportado.
func ValidTicketStatus(status string) bool {
	switch status {
	case TicketStatusAbierto, TicketStatusEnProceso, TicketStatusResuelto, TicketStatusCerrado:
		return true
	}
	return false
}

// SupportTicket consulta enviada desde el formulario de contacto.
// UserID es 0 cuando la envía un visitante sin sesión.
type SupportTicket struct {
	ID        int64
	UserID    int64
	Name      string
	Email     string
	Subject   string
	Message   string
	Category  string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
