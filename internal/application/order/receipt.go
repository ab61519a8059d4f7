package order

import (
	"context"
	"fmt"

	"github.com/tu-usuario/tienda-api/internal/domain"
	"github.com/tu-usuario/tienda-api/internal/domain/repository"
)

// ReceiptUseCase genera el comprobante en PDF de una orden.
type ReceiptUseCase struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	generator ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso inyectando sus dependencias.
func NewReceiptUseCase(orderRepo repository.OrderRepository, userRepo repository.UserRepository, generator ReceiptGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{orderRepo: orderRepo, userRepo: userRepo, generator: generator}
}

// DownloadReceipt recupera la orden con sus líneas y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si la orden no existe.
func (uc *ReceiptUseCase) DownloadReceipt(ctx context.Context, orderID string) ([]byte, string, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: obtener orden: %w", err)
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}
	items, err := uc.orderRepo.GetItemsByOrderID(orderID)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: obtener líneas: %w", err)
	}
	// El usuario puede haber sido borrado después de la orden; el comprobante
	// se genera igual con los datos que haya.
	user, err := uc.userRepo.GetByID(order.UserID)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: obtener usuario: %w", err)
	}

	pdfBytes, err := uc.generator.GenerateReceipt(ctx, order, user, items)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: generar PDF: %w", err)
	}
	filename := fmt.Sprintf("orden-%s.pdf", order.ID)
	return pdfBytes, filename, nil
}
