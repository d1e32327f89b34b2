package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/autotienda-api/internal/domain"
	"github.com/jhoicas/autotienda-api/internal/domain/entity"
	"github.com/jhoicas/autotienda-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación en memoria de OrderRepository.
type OrderRepo struct {
	s  *Store
	mu locker
}

// NewOrderRepository construye el adaptador sobre el store.
func NewOrderRepository(s *Store) *OrderRepo {
	return &OrderRepo{s: s, mu: &s.mu}
}

// Create asigna ID y guarda una copia del pedido con sus líneas.
func (r *OrderRepo) Create(_ context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.s.seq.orders++
	order.ID = r.s.seq.orders
	r.s.orders[order.ID] = order.Clone()
	return nil
}

// GetByID obtiene un pedido por ID.
func (r *OrderRepo) GetByID(_ context.Context, id int64) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.s.orders[id].Clone(), nil
}

// Update reemplaza el pedido. ErrNotFound si no existe.
func (r *OrderRepo) Update(_ context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.s.orders[order.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.orders[order.ID] = order.Clone()
	return nil
}

// List devuelve los pedidos en orden de alta aplicando los filtros no vacíos.
func (r *OrderRepo) List(_ context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Order, 0, len(r.s.orders))
	for _, o := range r.s.orders {
		if filter.UserID != 0 && o.UserID != filter.UserID {
			continue
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		list = append(list, o.Clone())
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// Delete elimina un pedido por ID.
func (r *OrderRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.s.orders[id]; !ok {
		return false, nil
	}
	delete(r.s.orders, id)
	return true, nil
}

// Count devuelve la cantidad de pedidos.
func (r *OrderRepo) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.s.orders), nil
}
