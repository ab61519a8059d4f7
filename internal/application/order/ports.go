package order

import (
	"context"

	"github.com/tu-usuario/tienda-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con un OrderRepository atado
// a la tx. Si fn retorna error, toda la transacción se revierte.
type TxRunner interface {
	Run(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error
}

// ReceiptGenerator genera la representación en PDF de una orden.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, order *entity.Order, user *entity.User, items []*entity.OrderItem) ([]byte, error)
}
