package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// Errores del subsistema de archivos (se validan antes de llamar al proveedor).
	ErrUnsupportedFileType = errors.New("tipo de archivo no permitido")
	ErrFileTooLarge        = errors.New("el archivo excede el tamaño máximo")
	// ErrStorageTimeout distingue el vencimiento del plazo de espera de un
	// fallo del proveedor de almacenamiento.
	ErrStorageTimeout = errors.New("tiempo de espera agotado con el proveedor de almacenamiento")
)
