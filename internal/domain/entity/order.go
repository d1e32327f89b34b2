package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido.
const (
	OrderStatusPendiente  = "pendiente"
	OrderStatusProcesando = "procesando"
	OrderStatusEnviado    = "enviado"
	OrderStatusEntregado  = "entregado"
	OrderStatusCancelado  = "cancelado"
)

// ValidOrderStatus indica si status es un estado de pedido soportado.
func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPendiente, OrderStatusProcesando, OrderStatusEnviado, OrderStatusEntregado, OrderStatusCancelado:
		return true
	}
	return false
}

// Order cabecera de un pedido. UserID referencia a User sin integridad referencial.
type Order struct {
	ID        int64
	UserID    int64
	Items     []OrderItem
	Total     decimal.Decimal // suma de Price*Quantity de Items
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone devuelve una copia con su propio slice de líneas.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	cp := *o
	cp.Items = append([]OrderItem(nil), o.Items...)
	return &cp
}
