package repository

import "github.com/tu-usuario/tienda-api/internal/domain/entity"

// CategoryFilter filtros opcionales para listar categorías.
type CategoryFilter struct {
	IsActive *bool  // nil = sin filtro
	Search   string // coincidencia parcial sobre name
	Limit    int
	Offset   int
}

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	Update(category *entity.Category) error
	List(filter CategoryFilter) ([]*entity.Category, error)
	Delete(id string) error
}
