package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea solicitada. Precio, nombre e imagen los pone el servidor.
type OrderItemRequest struct {
	ProductID int64 `json:"productId" validate:"required"`
	Quantity  int   `json:"quantity" validate:"required,min=1"`
}

// CreateOrderRequest entrada para crear un pedido.
type CreateOrderRequest struct {
	UserID int64              `json:"userId" validate:"required"`
	Items  []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderRequest actualización parcial de un pedido (admin). Las líneas son inmutables.
type UpdateOrderRequest struct {
	Status *string `json:"status"`
}

// OrderItemResponse línea de pedido con la foto del producto.
type OrderItemResponse struct {
	ProductID int64           `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Name      string          `json:"name"`
	Image     string          `json:"image"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID        int64               `json:"id"`
	UserID    int64               `json:"userId"`
	Items     []OrderItemResponse `json:"items"`
	Total     decimal.Decimal     `json:"total"`
	Status    string              `json:"status"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// OrderEnvelope respuesta de un único pedido.
type OrderEnvelope struct {
	Order OrderResponse `json:"order"`
}

// OrderListResponse listado de pedidos.
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}
