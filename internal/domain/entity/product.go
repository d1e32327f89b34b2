package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un vehículo del catálogo.
// Images nunca queda vacío después de normalizar (ver catalog.NormalizeImages).
type Product struct {
	ID          int64
	Name        string
	Category    string // sedan, suv, pickup, ...
	Price       decimal.Decimal
	Description string
	Images      []string
	Specs       map[string]string // ficha técnica: motor, transmisión, ...
	Features    []string
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MainImage devuelve la primera imagen (la que se congela en las líneas de pedido).
func (p *Product) MainImage() string {
	if p == nil || len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// Clone devuelve una copia profunda; los stores en memoria nunca comparten slices ni mapas con el llamador.
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Images = append([]string(nil), p.Images...)
	cp.Features = append([]string(nil), p.Features...)
	if p.Specs != nil {
		cp.Specs = make(map[string]string, len(p.Specs))
		for k, v := range p.Specs {
			cp.Specs[k] = v
		}
	}
	return &cp
}
