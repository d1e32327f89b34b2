package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/autotienda-api/internal/application/orders"
	"github.com/jhoicas/autotienda-api/internal/domain/repository"
)

// Ensure TxRunner implements orders.TxRunner.
var _ orders.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunOrder inicia una transacción, ejecuta fn con repos de productos y pedidos atados a la tx
// y hace Commit o Rollback.
func (r *TxRunner) RunOrder(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	orderRepo := NewOrderRepository(tx)

	if err := fn(productRepo, orderRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Repositories agrupa los adaptadores sobre el pool.
type Repositories struct {
	Users    *UserRepo
	Products *ProductRepo
	Orders   *OrderRepo
	Support  *SupportRepo
	FAQs     *FAQRepo
}

// NewRepositories construye todos los repos sobre el pool.
func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:    NewUserRepository(pool),
		Products: NewProductRepository(pool),
		Orders:   NewOrderRepository(pool),
		Support:  NewSupportRepository(pool),
		FAQs:     NewFAQRepository(pool),
	}
}
