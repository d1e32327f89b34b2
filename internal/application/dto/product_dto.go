package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un vehículo del catálogo.
// Image e Images se combinan; si ambos llegan vacíos se usa un placeholder.
type CreateProductRequest struct {
	Name        string            `json:"name" validate:"required,min=1,max=200"`
	Category    string            `json:"category"`
	Price       *decimal.Decimal  `json:"price" validate:"required,gt=0"`
	Description string            `json:"description" validate:"required"`
	Image       string            `json:"image"`
	Images      []string          `json:"images"`
	Specs       map[string]string `json:"specs"`
	Features    []string          `json:"features"`
	Stock       *int              `json:"stock" validate:"omitempty,min=0"`
}

// UpdateProductRequest actualización parcial de un producto.
type UpdateProductRequest struct {
	Name        *string            `json:"name"`
	Category    *string            `json:"category"`
	Price       *decimal.Decimal   `json:"price"`
	Description *string            `json:"description"`
	Image       *string            `json:"image"`
	Images      *[]string          `json:"images"`
	Specs       *map[string]string `json:"specs"`
	Features    *[]string          `json:"features"`
	Stock       *int               `json:"stock"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Category    string            `json:"category"`
	Price       decimal.Decimal   `json:"price"`
	Description string            `json:"description"`
	Images      []string          `json:"images"`
	Specs       map[string]string `json:"specs"`
	Features    []string          `json:"features"`
	Stock       int               `json:"stock"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// ProductEnvelope respuesta de un único producto.
type ProductEnvelope struct {
	Product ProductResponse `json:"product"`
}

// ProductListResponse listado del catálogo.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

// ImportResult resumen de una carga de catálogo.
type ImportResult struct {
	Created    []int64  `json:"created"`
	Duplicates []string `json:"duplicates"`
	Failed     []string `json:"failed"`
}
