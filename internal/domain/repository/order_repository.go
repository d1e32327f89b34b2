package repository

import (
	"context"

	"github.com/jhoicas/autotienda-api/internal/domain/entity"
)

// OrderFilter filtros del listado de pedidos. Cero/vacío = sin filtrar.
type OrderFilter struct {
	UserID int64
	Status string
}

// OrderRepository define el puerto de persistencia para Order y sus líneas.
type OrderRepository interface {
	// Create persiste cabecera y líneas; asigna ID.
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id int64) (*entity.Order, error)
	// Update reemplaza estado y líneas del pedido.
	Update(ctx context.Context, order *entity.Order) error
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int, error)
}
