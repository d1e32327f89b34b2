// Package sales contiene los servicios de dominio de pedidos.
package sales

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/autotienda-api/internal/domain/entity"
)

// OrderTotal suma Price*Quantity de cada línea. Un pedido sin líneas vale cero.
func OrderTotal(items []entity.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// SnapshotItem congela nombre, precio e imagen principal del producto en una línea de pedido.
func SnapshotItem(p *entity.Product, quantity int) entity.OrderItem {
	return entity.OrderItem{
		ProductID: p.ID,
		Quantity:  quantity,
		Price:     p.Price,
		Name:      p.Name,
		Image:     p.MainImage(),
	}
}
