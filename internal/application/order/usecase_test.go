package order_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tienda-api/internal/application/dto"
	apporder "github.com/tu-usuario/tienda-api/internal/application/order"
	"github.com/tu-usuario/tienda-api/internal/domain"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeOrderRepo repositorio en memoria con fallos inyectables.
type fakeOrderRepo struct {
	orders map[string]*entity.Order
	items  map[string][]*entity.OrderItem

	// failItemAt hace fallar CreateItem en la N-ésima llamada (1-based); 0 desactiva.
	failItemAt int
	itemCalls  int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: make(map[string]*entity.Order),
		items:  make(map[string][]*entity.OrderItem),
	}
}

func (f *fakeOrderRepo) Create(o *entity.Order) error {
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) CreateItem(it *entity.OrderItem) error {
	f.itemCalls++
	if f.failItemAt > 0 && f.itemCalls == f.failItemAt {
		return errors.New("fallo inyectado en insert de línea")
	}
	cp := *it
	f.items[it.OrderID] = append(f.items[it.OrderID], &cp)
	return nil
}

func (f *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) GetItemsByOrderID(orderID string) ([]*entity.OrderItem, error) {
	return f.items[orderID], nil
}

func (f *fakeOrderRepo) List(filter repository.OrderFilter) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if filter.UserID != "" && o.UserID != filter.UserID {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrderRepo) Update(o *entity.Order) error {
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) UpdateStatus(id, status string) error {
	if o, ok := f.orders[id]; ok {
		o.Status = status
	}
	return nil
}

func (f *fakeOrderRepo) Delete(id string) error {
	delete(f.orders, id)
	delete(f.items, id)
	return nil
}

// fakeTxRunner emula la transacción: toma una instantánea del repo y la
// restaura si el callback falla, igual que un ROLLBACK.
type fakeTxRunner struct {
	repo *fakeOrderRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.OrderRepository) error) error {
	ordersSnap := make(map[string]*entity.Order, len(r.repo.orders))
	for k, v := range r.repo.orders {
		cp := *v
		ordersSnap[k] = &cp
	}
	itemsSnap := make(map[string][]*entity.OrderItem, len(r.repo.items))
	for k, v := range r.repo.items {
		itemsSnap[k] = append([]*entity.OrderItem(nil), v...)
	}
	if err := fn(r.repo); err != nil {
		r.repo.orders = ordersSnap
		r.repo.items = itemsSnap
		return err
	}
	return nil
}

func newOrderUC() (*apporder.OrderUseCase, *fakeOrderRepo) {
	repo := newFakeOrderRepo()
	return apporder.NewOrderUseCase(&fakeTxRunner{repo: repo}, repo), repo
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func validCreateRequest() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		ShippingAddress: "Calle 123 #45-67, Bogotá",
		PaymentMethod:   entity.PaymentCreditCard,
		Items: []dto.OrderItemRequest{
			{ProductID: "prod-1", Quantity: 2, Price: price("10.00")},
			{ProductID: "prod-2", Quantity: 1, Price: price("5.00")},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_CalculaTotalEnServidor(t *testing.T) {
	uc, _ := newOrderUC()

	out, err := uc.Create(context.Background(), "user-1", validCreateRequest())
	require.NoError(t, err)
	require.NotNil(t, out)

	// 2 × 10.00 + 1 × 5.00 = 25.00
	assert.True(t, price("25.00").Equal(out.TotalAmount),
		"el total debe ser 25.00, fue %s", out.TotalAmount)
	assert.Equal(t, entity.OrderStatusPending, out.Status,
		"toda orden nueva nace en pending")
	assert.Len(t, out.Items, 2)
	assert.Equal(t, "user-1", out.UserID)
}

func TestCreate_FalloEnSegundaLinea_NoDejaOrdenParcial(t *testing.T) {
	uc, repo := newOrderUC()
	repo.failItemAt = 2

	_, err := uc.Create(context.Background(), "user-1", validCreateRequest())
	require.Error(t, err)

	// Tras el rollback no debe quedar ni cabecera ni líneas.
	assert.Empty(t, repo.orders, "la cabecera debe revertirse")
	assert.Empty(t, repo.items, "las líneas deben revertirse")
}

func TestCreate_Validaciones(t *testing.T) {
	uc, _ := newOrderUC()
	ctx := context.Background()

	t.Run("sin usuario", func(t *testing.T) {
		_, err := uc.Create(ctx, "", validCreateRequest())
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
	t.Run("sin dirección", func(t *testing.T) {
		in := validCreateRequest()
		in.ShippingAddress = ""
		_, err := uc.Create(ctx, "user-1", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
	t.Run("sin líneas", func(t *testing.T) {
		in := validCreateRequest()
		in.Items = nil
		_, err := uc.Create(ctx, "user-1", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
	t.Run("método de pago desconocido", func(t *testing.T) {
		in := validCreateRequest()
		in.PaymentMethod = "bitcoin"
		_, err := uc.Create(ctx, "user-1", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
	t.Run("cantidad cero", func(t *testing.T) {
		in := validCreateRequest()
		in.Items[0].Quantity = 0
		_, err := uc.Create(ctx, "user-1", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
	t.Run("precio negativo", func(t *testing.T) {
		in := validCreateRequest()
		in.Items[0].Price = price("-1.00")
		_, err := uc.Create(ctx, "user-1", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID / List
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_Inexistente_RetornaNotFound(t *testing.T) {
	uc, _ := newOrderUC()
	_, err := uc.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_EstadoInvalido_Rechazado(t *testing.T) {
	uc, _ := newOrderUC()
	_, err := uc.List(repository.OrderFilter{Status: "enviadísima", Limit: 20})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestList_FiltraPorEstado(t *testing.T) {
	uc, _ := newOrderUC()
	ctx := context.Background()

	created, err := uc.Create(ctx, "user-1", validCreateRequest())
	require.NoError(t, err)
	_, err = uc.Create(ctx, "user-2", validCreateRequest())
	require.NoError(t, err)
	_, err = uc.UpdateStatus(created.ID, entity.OrderStatusShipped)
	require.NoError(t, err)

	out, err := uc.List(repository.OrderFilter{Status: entity.OrderStatusShipped, Limit: 20})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, created.ID, out.Items[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateStatus
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStatus_EstadoInvalido_Rechazado(t *testing.T) {
	uc, _ := newOrderUC()
	created, err := uc.Create(context.Background(), "user-1", validCreateRequest())
	require.NoError(t, err)

	_, err = uc.UpdateStatus(created.ID, "perdida")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateStatus_CualquierTransicionEsLegal(t *testing.T) {
	uc, _ := newOrderUC()
	created, err := uc.Create(context.Background(), "user-1", validCreateRequest())
	require.NoError(t, err)

	// pending → delivered directo, sin pasar por confirmed/shipped.
	out, err := uc.UpdateStatus(created.ID, entity.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, out.Status)
	require.NotNil(t, out.DeliveredAt, "delivered debe fijar el timestamp de entrega")

	// delivered → pending también pasa: la máquina de estados no restringe.
	out, err = uc.UpdateStatus(created.ID, entity.OrderStatusPending)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, out.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_MergeParcial(t *testing.T) {
	uc, _ := newOrderUC()
	created, err := uc.Create(context.Background(), "user-1", validCreateRequest())
	require.NoError(t, err)

	addr := "Carrera 7 #1-10, Medellín"
	out, err := uc.Update(created.ID, dto.UpdateOrderRequest{ShippingAddress: &addr})
	require.NoError(t, err)
	assert.Equal(t, addr, out.ShippingAddress)
	assert.Equal(t, entity.PaymentCreditCard, out.PaymentMethod,
		"el método de pago no enviado no debe tocarse")
}

func TestUpdate_MetodoDePagoInvalido_Rechazado(t *testing.T) {
	uc, _ := newOrderUC()
	created, err := uc.Create(context.Background(), "user-1", validCreateRequest())
	require.NoError(t, err)

	bad := "trueque"
	_, err = uc.Update(created.ID, dto.UpdateOrderRequest{PaymentMethod: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDelete_Inexistente_RetornaNotFound(t *testing.T) {
	uc, _ := newOrderUC()
	err := uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
