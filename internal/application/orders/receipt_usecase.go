package orders

import (
	"context"
	"fmt"

	"github.com/jhoicas/autotienda-api/internal/application/dto"
	"github.com/jhoicas/autotienda-api/internal/domain/repository"
)

// ReceiptUseCase genera el comprobante PDF de un pedido.
type ReceiptUseCase struct {
	orders    *OrderUseCase
	userRepo  repository.UserRepository
	generator ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso inyectando sus dependencias.
func NewReceiptUseCase(orders *OrderUseCase, userRepo repository.UserRepository, generator ReceiptGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{orders: orders, userRepo: userRepo, generator: generator}
}

// DownloadReceipt devuelve (pdf, nombre de archivo). Mismas reglas de acceso que GetOrder.
func (uc *ReceiptUseCase) DownloadReceipt(ctx context.Context, actor *dto.Actor, orderID int64) ([]byte, string, error) {
	order, err := uc.orders.load(ctx, actor, orderID)
	if err != nil {
		return nil, "", err
	}
	customer, err := uc.userRepo.GetByID(ctx, order.UserID)
	if err != nil {
		return nil, "", fmt.Errorf("comprobante: obtener cliente: %w", err)
	}
	pdf, err := uc.generator.GenerateReceiptPDF(ctx, order, customer)
	if err != nil {
		return nil, "", fmt.Errorf("comprobante: generación fallida: %w", err)
	}
	return pdf, fmt.Sprintf("pedido_%d.pdf", order.ID), nil
}
