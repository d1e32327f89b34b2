package entity

import "time"

// Valores por defecto de una FAQ.
const (
	DefaultFAQCategory = "general"
	DefaultFAQOrder    = 999
)

// FAQ pregunta frecuente. Order es la clave de orden ascendente en el listado público.
type FAQ struct {
	ID        int64
	Question  string
	Answer    string
	Category  string
	Order     int
	CreatedAt time.Time
	UpdatedAt time.Time
}
