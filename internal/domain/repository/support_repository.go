package repository

import (
	"context"

	"github.com/jhoicas/autotienda-api/internal/domain/entity"
)

// SupportFilter filtros del listado de tickets. Cero/vacío = sin filtrar.
type SupportFilter struct {
	UserID   int64
	Status   string
	Category string
}

// SupportRepository define el puerto de persistencia para SupportTicket.
type SupportRepository interface {
	Create(ctx context.Context, ticket *entity.SupportTicket) error
	GetByID(ctx context.Context, id int64) (*entity.SupportTicket, error)
	Update(ctx context.Context, ticket *entity.SupportTicket) error
	List(ctx context.Context, filter SupportFilter) ([]*entity.SupportTicket, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int, error)
}
