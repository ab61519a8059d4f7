package repository

import "github.com/tu-usuario/tienda-api/internal/domain/entity"

// UploadRepository define el puerto de persistencia para los metadatos de
// archivos subidos.
type UploadRepository interface {
	Create(file *entity.UploadedFile) error
	GetByPublicID(publicID string) (*entity.UploadedFile, error)
	List(limit, offset int) ([]*entity.UploadedFile, error)
	DeleteByPublicID(publicID string) error
}
