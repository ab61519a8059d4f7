package upload

import "context"

// StorageProvider es el contrato mínimo con el proveedor de almacenamiento
// externo. Lo implementa infrastructure/storage; la interfaz permite simularlo
// en tests sin red.
type StorageProvider interface {
	// Upload sube los bytes bajo publicID y devuelve la URL pública.
	Upload(ctx context.Context, publicID string, data []byte, contentType string) (string, error)
	// Remove borra los objetos indicados por publicID.
	Remove(ctx context.Context, publicIDs []string) error
}
