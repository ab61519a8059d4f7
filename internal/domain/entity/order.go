package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// ValidOrderStatus indica si el estado es uno de los conocidos.
// Las transiciones entre estados no están restringidas: cualquier estado
// válido puede sobrescribir a cualquier otro.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Métodos de pago aceptados.
const (
	PaymentCreditCard   = "credit_card"
	PaymentDebitCard    = "debit_card"
	PaymentCashDelivery = "cash_on_delivery"
	PaymentBankTransfer = "bank_transfer"
)

// ValidPaymentMethod indica si el método de pago es uno de los conocidos.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCreditCard, PaymentDebitCard, PaymentCashDelivery, PaymentBankTransfer:
		return true
	}
	return false
}

// Order representa la cabecera de una orden de compra.
// TotalAmount siempre se recalcula en el servidor a partir de los ítems.
type Order struct {
	ID              string
	UserID          string
	TotalAmount     decimal.Decimal
	Status          string
	ShippingAddress string
	PaymentMethod   string
	DeliveredAt     *time.Time // nil hasta que la orden se marca como entregada
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem es una línea de la orden: producto + cantidad + precio unitario
// al momento de la compra. Inmutable después de creada.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}
