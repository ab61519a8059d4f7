package repository

import "github.com/tu-usuario/tienda-api/internal/domain/entity"

// OrderFilter filtros opcionales para listar órdenes.
type OrderFilter struct {
	UserID string // vacío = todas
	Status string // vacío = todos
	Limit  int
	Offset int
}

// OrderRepository define el puerto de persistencia para Order y sus ítems.
// Create y CreateItem se usan dentro de la transacción de creación; el resto
// son operaciones de una sola fila sin agrupación transaccional.
type OrderRepository interface {
	Create(order *entity.Order) error
	CreateItem(item *entity.OrderItem) error
	GetByID(id string) (*entity.Order, error)
	GetItemsByOrderID(orderID string) ([]*entity.OrderItem, error)
	List(filter OrderFilter) ([]*entity.Order, error)
	Update(order *entity.Order) error
	UpdateStatus(id, status string) error
	Delete(id string) error
}
