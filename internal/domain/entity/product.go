package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Variant es una variante de presentación de un producto (color + talla).
// El orden de la lista se conserva tal como lo envió el cliente.
type Variant struct {
	Color string `json:"color"`
	Size  string `json:"size"`
	Stock int    `json:"stock"` // unidades disponibles, >= 0
}

// Product representa un producto del catálogo.
// Las variantes se persisten como JSONB en la misma fila.
type Product struct {
	ID          string
	Name        string
	Description string
	Brand       string
	Price       decimal.Decimal // precio de venta, >= 0
	Variants    []Variant
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
