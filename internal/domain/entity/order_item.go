package entity

import "github.com/shopspring/decimal"

// OrderItem línea de pedido. Name, Price e Image son una foto del producto al momento
// de comprar: editar el producto después no altera pedidos históricos.
type OrderItem struct {
	ProductID int64
	Quantity  int
	Price     decimal.Decimal
	Name      string
	Image     string
}

// Subtotal devuelve Price * Quantity.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
