package orders

import (
	"context"

	"github.com/jhoicas/autotienda-api/internal/domain/entity"
	"github.com/jhoicas/autotienda-api/internal/domain/repository"
)

// TxRunner ejecuta fn con repositorios atados a una misma unidad atómica
// (transacción PostgreSQL o bloqueo de escritura del store en memoria).
// Si fn devuelve error no queda ningún cambio aplicado.
type TxRunner interface {
	RunOrder(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error) error
}

// ReceiptGenerator puerto de salida para la representación PDF de un pedido.
// customer puede ser nil si la cuenta ya no existe.
type ReceiptGenerator interface {
	GenerateReceiptPDF(ctx context.Context, order *entity.Order, customer *entity.User) ([]byte, error)
}
