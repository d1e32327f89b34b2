package repository

import (
	"context"

	"github.com/jhoicas/autotienda-api/internal/domain/entity"
)

// ProductFilter filtros del listado de catálogo. Category vacío = todas.
type ProductFilter struct {
	Category string
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetForUpdate igual que GetByID pero bloquea la fila hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// UpdateStock fija el stock sin tocar el resto del registro (usado al reservar stock de un pedido).
	UpdateStock(ctx context.Context, id int64, stock int) error
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int, error)
}
