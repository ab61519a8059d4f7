package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-api/internal/application/dto"
	"github.com/tu-usuario/tienda-api/internal/domain"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-api/internal/domain/repository"
)

// OrderUseCase casos de uso de órdenes. La creación es la única operación
// transaccional: cabecera, líneas y relectura comparten una sola tx.
type OrderUseCase struct {
	txRunner TxRunner
	repo     repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(txRunner TxRunner, repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{txRunner: txRunner, repo: repo}
}

// Create crea la orden y sus líneas de forma atómica.
//
// El total se calcula en el servidor como Σ precio × cantidad sobre las líneas
// enviadas. Los precios unitarios se toman tal como vienen del cliente y los
// product_id no se verifican contra el catálogo (comportamiento heredado,
// ver DESIGN.md). Dentro de la transacción:
//  1. inserta la cabecera con estado pending,
//  2. inserta una fila por línea,
//  3. relee la orden completa para la respuesta.
//
// Cualquier fallo revierte los tres pasos: nunca queda una orden parcial.
func (uc *OrderUseCase) Create(ctx context.Context, userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if userID == "" || in.ShippingAddress == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if item.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	total := decimal.Zero
	for _, item := range in.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	now := time.Now()
	orderID := uuid.New().String()
	var created *entity.Order
	var createdItems []*entity.OrderItem

	err := uc.txRunner.Run(ctx, func(orderRepo repository.OrderRepository) error {
		header := &entity.Order{
			ID:              orderID,
			UserID:          userID,
			TotalAmount:     total,
			Status:          entity.OrderStatusPending,
			ShippingAddress: in.ShippingAddress,
			PaymentMethod:   in.PaymentMethod,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := orderRepo.Create(header); err != nil {
			return err
		}
		for _, item := range in.Items {
			line := &entity.OrderItem{
				ID:        uuid.New().String(),
				OrderID:   orderID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.Price,
			}
			if err := orderRepo.CreateItem(line); err != nil {
				return err
			}
		}
		// Relectura dentro de la misma tx para devolver la orden persistida.
		var err error
		created, err = orderRepo.GetByID(orderID)
		if err != nil {
			return err
		}
		if created == nil {
			return fmt.Errorf("orden %s no visible dentro de la transacción", orderID)
		}
		createdItems, err = orderRepo.GetItemsByOrderID(orderID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("crear orden: %w", err)
	}

	return toOrderResponse(created, createdItems), nil
}

// GetByID obtiene una orden con sus líneas. ErrNotFound si no existe.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.repo.GetItemsByOrderID(id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, items), nil
}

// List lista cabeceras de órdenes con filtros de estado/usuario y paginación.
func (uc *OrderUseCase) List(filter repository.OrderFilter) (*dto.OrderListResponse, error) {
	if filter.Status != "" && !entity.ValidOrderStatus(filter.Status) {
		return nil, domain.ErrInvalidInput
	}
	orders, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	out := &dto.OrderListResponse{
		Items: make([]dto.OrderResponse, 0, len(orders)),
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}
	for _, o := range orders {
		out.Items = append(out.Items, *toOrderResponse(o, nil))
	}
	return out, nil
}

// Update aplica un merge parcial (dirección/método de pago) sobre la orden.
// Operación de una sola fila, sin control de concurrencia: el último escritor gana.
func (uc *OrderUseCase) Update(id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if in.ShippingAddress != nil {
		order.ShippingAddress = *in.ShippingAddress
	}
	if in.PaymentMethod != nil {
		if !entity.ValidPaymentMethod(*in.PaymentMethod) {
			return nil, domain.ErrInvalidInput
		}
		order.PaymentMethod = *in.PaymentMethod
	}
	order.UpdatedAt = time.Now()
	if err := uc.repo.Update(order); err != nil {
		return nil, err
	}
	items, err := uc.repo.GetItemsByOrderID(id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, items), nil
}

// UpdateStatus cambia el estado de la orden. Solo se valida que el estado sea
// uno de los conocidos; cualquier transición es legal (ver DESIGN.md).
// Al pasar a delivered se registra el timestamp de entrega.
func (uc *OrderUseCase) UpdateStatus(id, status string) (*dto.OrderResponse, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	if status == entity.OrderStatusDelivered && order.DeliveredAt == nil {
		t := time.Now()
		order.DeliveredAt = &t
	}
	if err := uc.repo.Update(order); err != nil {
		return nil, err
	}
	items, err := uc.repo.GetItemsByOrderID(id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, items), nil
}

// Delete elimina una orden por ID. ErrNotFound si no existe.
func (uc *OrderUseCase) Delete(id string) error {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toOrderResponse(o *entity.Order, items []*entity.OrderItem) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	resp := &dto.OrderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		TotalAmount:     o.TotalAmount,
		Status:          o.Status,
		ShippingAddress: o.ShippingAddress,
		PaymentMethod:   o.PaymentMethod,
		DeliveredAt:     o.DeliveredAt,
		Items:           make([]dto.OrderItemResponse, 0, len(items)),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return resp
}
