package repository

import "github.com/tu-usuario/tienda-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(search string, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
