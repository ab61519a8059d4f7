package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required,min=1,max=200"`
	Description string           `json:"description"`
	Brand       string           `json:"brand" validate:"omitempty,max=100"`
	Price       decimal.Decimal  `json:"price"`
	Variants    []entity.Variant `json:"variants"`
}

// UpdateProductRequest entrada para actualizar un producto (merge parcial).
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Brand       *string          `json:"brand" validate:"omitempty,max=100"`
	Price       *decimal.Decimal `json:"price"`
	Variants    []entity.Variant `json:"variants"` // nil = no tocar
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Brand       string           `json:"brand"`
	Price       decimal.Decimal  `json:"price"`
	Variants    []entity.Variant `json:"variants"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
