package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest una línea de la orden tal como la envía el cliente.
// El precio unitario se toma como viene; no se cruza contra el catálogo.
type OrderItemRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
	Price     decimal.Decimal `json:"price"`
}

// CreateOrderRequest entrada para crear una orden.
type CreateOrderRequest struct {
	ShippingAddress string             `json:"shipping_address" validate:"required,max=300"`
	PaymentMethod   string             `json:"payment_method" validate:"required"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1"`
}

// UpdateOrderRequest entrada para actualizar una orden (merge parcial).
// El total y los ítems no son actualizables por esta vía.
type UpdateOrderRequest struct {
	ShippingAddress *string `json:"shipping_address" validate:"omitempty,max=300"`
	PaymentMethod   *string `json:"payment_method"`
}

// UpdateOrderStatusRequest entrada para cambiar el estado de una orden.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderItemResponse una línea de la orden persistida.
type OrderItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderResponse salida de una orden con sus líneas.
type OrderResponse struct {
	ID              string              `json:"id"`
	UserID          string              `json:"user_id"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	Status          string              `json:"status"`
	ShippingAddress string              `json:"shipping_address"`
	PaymentMethod   string              `json:"payment_method"`
	DeliveredAt     *time.Time          `json:"delivered_at,omitempty"`
	Items           []OrderItemResponse `json:"items"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// OrderListResponse lista paginada de órdenes (sin líneas, cabeceras solas).
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
