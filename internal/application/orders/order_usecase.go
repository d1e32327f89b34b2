package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/autotienda-api/internal/application/dto"
	"github.com/jhoicas/autotienda-api/internal/domain"
	"github.com/jhoicas/autotienda-api/internal/domain/entity"
	"github.com/jhoicas/autotienda-api/internal/domain/repository"
)

// OrderUseCase consultas y gestión de pedidos ya creados.
type OrderUseCase struct {
	repo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// GetOrder devuelve un pedido. ErrNotFound si no existe o no es del actor: un cliente no distingue
// los pedidos ajenos de los inexistentes.
func (uc *OrderUseCase) GetOrder(ctx context.Context, actor *dto.Actor, id int64) (*dto.OrderResponse, error) {
	order, err := uc.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// ListOrders lista pedidos filtrando por userId/status. Un cliente solo ve los suyos.
func (uc *OrderUseCase) ListOrders(ctx context.Context, actor *dto.Actor, filter repository.OrderFilter) (*dto.OrderListResponse, error) {
	if !actor.IsAdmin() {
		if !actor.IsAuthenticated() {
			return nil, domain.ErrUnauthorized
		}
		filter.UserID = actor.UserID
	}
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{Orders: out}, nil
}

// UpdateOrder cambia el estado del pedido. Las líneas y el total no se editan.
func (uc *OrderUseCase) UpdateOrder(ctx context.Context, id int64, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if in.Status != nil {
		if !entity.ValidOrderStatus(*in.Status) {
			return nil, fmt.Errorf("%w: status inválido %q", domain.ErrInvalidInput, *in.Status)
		}
		order.Status = *in.Status
	}
	order.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// DeleteOrder elimina un pedido. false si no existía.
func (uc *OrderUseCase) DeleteOrder(ctx context.Context, id int64) (bool, error) {
	return uc.repo.Delete(ctx, id)
}

func (uc *OrderUseCase) load(ctx context.Context, actor *dto.Actor, id int64) (*entity.Order, error) {
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener pedido: %w", err)
	}
	if order == nil || !actor.CanAccess(order.UserID) {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Name:      it.Name,
			Image:     it.Image,
		})
	}
	return &dto.OrderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		Items:     items,
		Total:     o.Total,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
