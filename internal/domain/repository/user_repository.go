package repository

import "github.com/tu-usuario/tienda-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Las búsquedas devuelven (nil, nil) cuando no hay fila; la traducción a
// ErrNotFound o a "no existe" la decide cada caso de uso.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	// GetCredentialsByEmail trae solo id, email, password_hash y role
	// (proyección mínima para login).
	GetCredentialsByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
	Delete(id string) error
}
