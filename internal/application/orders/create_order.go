package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/autotienda-api/internal/application/dto"
	"github.com/jhoicas/autotienda-api/internal/domain"
	"github.com/jhoicas/autotienda-api/internal/domain/entity"
	"github.com/jhoicas/autotienda-api/internal/domain/repository"
	"github.com/jhoicas/autotienda-api/internal/domain/sales"
)

// CreateOrderUseCase crea pedidos de forma todo-o-nada: o todas las líneas validan
// y el pedido se guarda, o el store queda exactamente como estaba.
type CreateOrderUseCase struct {
	txRunner     TxRunner
	reserveStock bool
}

// NewCreateOrderUseCase construye el caso de uso. Con reserveStock=true el stock de cada
// producto se descuenta dentro de la misma transacción que guarda el pedido.
func NewCreateOrderUseCase(txRunner TxRunner, reserveStock bool) *CreateOrderUseCase {
	return &CreateOrderUseCase{txRunner: txRunner, reserveStock: reserveStock}
}

// CreateOrder valida cada línea contra el producto (existencia y stock), congela nombre,
// precio e imagen del producto y acumula el total.
//
// Errores:
//   - domain.ErrInvalidInput      userId/items ausentes o cantidad < 1.
//   - domain.ErrForbidden         un cliente intenta crear un pedido a nombre de otro usuario.
//   - domain.ErrNotFound          alguna línea referencia un producto inexistente (el mensaje nombra el ID).
//   - domain.ErrInsufficientStock la cantidad supera el stock (el mensaje nombra el producto).
func (uc *CreateOrderUseCase) CreateOrder(ctx context.Context, actor *dto.Actor, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.UserID <= 0 || len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: userId e items son requeridos", domain.ErrInvalidInput)
	}
	if !actor.CanAccess(in.UserID) {
		return nil, domain.ErrForbidden
	}
	for i, line := range in.Items {
		if line.ProductID <= 0 || line.Quantity < 1 {
			return nil, fmt.Errorf("%w: la línea %d requiere productId y quantity >= 1", domain.ErrInvalidInput, i+1)
		}
	}

	now := time.Now()
	order := &entity.Order{
		UserID:    in.UserID,
		Status:    entity.OrderStatusPendiente,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := uc.txRunner.RunOrder(ctx, func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error {
		// Cantidad acumulada por producto: dos líneas del mismo vehículo compiten por el mismo stock.
		requested := make(map[int64]int, len(in.Items))
		products := make(map[int64]*entity.Product, len(in.Items))
		items := make([]entity.OrderItem, 0, len(in.Items))

		for _, line := range in.Items {
			product, ok := products[line.ProductID]
			if !ok {
				p, err := productRepo.GetForUpdate(ctx, line.ProductID)
				if err != nil {
					return err
				}
				if p == nil {
					return fmt.Errorf("%w: producto %d no existe", domain.ErrNotFound, line.ProductID)
				}
				products[line.ProductID] = p
				product = p
			}
			requested[line.ProductID] += line.Quantity
			if requested[line.ProductID] > product.Stock {
				return fmt.Errorf("%w: %s (disponible %d, solicitado %d)",
					domain.ErrInsufficientStock, product.Name, product.Stock, requested[line.ProductID])
			}
			items = append(items, sales.SnapshotItem(product, line.Quantity))
		}

		order.Items = items
		order.Total = sales.OrderTotal(items)

		if uc.reserveStock {
			for id, qty := range requested {
				if err := productRepo.UpdateStock(ctx, id, products[id].Stock-qty); err != nil {
					return err
				}
			}
		}
		return orderRepo.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}
