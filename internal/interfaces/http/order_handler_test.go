package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tienda-api/internal/application/dto"
	apporder "github.com/tu-usuario/tienda-api/internal/application/order"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-api/internal/domain/repository"
	apphttp "github.com/tu-usuario/tienda-api/internal/interfaces/http"
)

// errInfraestructura simula un fallo de la capa de datos con detalle interno
// (host, driver) que jamás debe llegar al cliente.
var errInfraestructura = errors.New("pg: connection to host db-internal-10.2.3.4 failed")

// failingOrderRepo falla en toda operación con el error de infraestructura.
type failingOrderRepo struct{}

func (r *failingOrderRepo) Create(*entity.Order) error         { return errInfraestructura }
func (r *failingOrderRepo) CreateItem(*entity.OrderItem) error { return errInfraestructura }
func (r *failingOrderRepo) GetByID(string) (*entity.Order, error) {
	return nil, errInfraestructura
}
func (r *failingOrderRepo) GetItemsByOrderID(string) ([]*entity.OrderItem, error) {
	return nil, errInfraestructura
}
func (r *failingOrderRepo) List(repository.OrderFilter) ([]*entity.Order, error) {
	return nil, errInfraestructura
}
func (r *failingOrderRepo) Update(*entity.Order) error      { return errInfraestructura }
func (r *failingOrderRepo) UpdateStatus(_, _ string) error  { return errInfraestructura }
func (r *failingOrderRepo) Delete(string) error             { return errInfraestructura }

// passthroughTx ejecuta el callback sin transacción real.
type passthroughTx struct{ repo repository.OrderRepository }

func (t *passthroughTx) Run(_ context.Context, fn func(repository.OrderRepository) error) error {
	return fn(t.repo)
}

// Un fallo inesperado del repositorio debe responder 500 con el mensaje
// genérico; el detalle (host, driver) no viaja al cliente.
func TestOrderHandler_FalloInterno_NoFiltraDetalle(t *testing.T) {
	repo := &failingOrderRepo{}
	uc := apporder.NewOrderUseCase(&passthroughTx{repo: repo}, repo)
	h := apphttp.NewOrderHandler(uc, nil, nil)

	app := fiber.New()
	app.Get("/api/orders/:id", apphttp.AuthMiddleware(testJWTSecret, &fakeResolver{}), h.GetByID)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/abc-123", nil)
	req.Header.Set("Authorization", tokenForRole(t, entity.RoleUser))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INTERNAL", body.Code)
	assert.Equal(t, "error interno", body.Message,
		"el 500 debe llevar solo el mensaje genérico")
	assert.NotContains(t, body.Message, "db-internal",
		"el host interno no debe filtrarse al cliente")
	assert.NotContains(t, body.Message, "pg:",
		"el detalle del driver no debe filtrarse al cliente")
}

// La creación pasa por la transacción; su fallo también debe quedar en el
// mensaje genérico.
func TestOrderHandler_FalloEnCreacion_NoFiltraDetalle(t *testing.T) {
	repo := &failingOrderRepo{}
	uc := apporder.NewOrderUseCase(&passthroughTx{repo: repo}, repo)
	h := apphttp.NewOrderHandler(uc, nil, nil)

	app := fiber.New()
	app.Post("/api/orders", apphttp.AuthMiddleware(testJWTSecret, &fakeResolver{}), h.Create)

	payload := `{"shipping_address":"Calle 1 #2-3","payment_method":"cash_on_delivery","items":[{"product_id":"p1","quantity":1,"price":"10.00"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(payload))
	req.Header.Set("Authorization", tokenForRole(t, entity.RoleUser))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "error interno", body.Message)
	assert.NotContains(t, body.Message, "db-internal")
}
