package entity

import "time"

// Category representa una categoría del catálogo.
// No tiene relación con Product en este esquema (sin foreign key).
type Category struct {
	ID          string
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
