package memory

import (
	"context"
	"maps"

	"github.com/jhoicas/autotienda-api/internal/application/orders"
	"github.com/jhoicas/autotienda-api/internal/domain/repository"
)

var _ orders.TxRunner = (*TxRunner)(nil)

// TxRunner serializa la creación de pedidos con el bloqueo de escritura del store.
// Si el callback falla, productos, pedidos y secuencias vuelven a su estado previo.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// RunOrder implementa orders.TxRunner.
func (t *TxRunner) RunOrder(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	products := maps.Clone(t.s.products)
	ordersSnap := maps.Clone(t.s.orders)
	seq := t.s.seq

	err := fn(
		&ProductRepo{s: t.s, mu: noopLocker{}},
		&OrderRepo{s: t.s, mu: noopLocker{}},
	)
	if err != nil {
		t.s.products = products
		t.s.orders = ordersSnap
		t.s.seq = seq
		return err
	}
	return nil
}
