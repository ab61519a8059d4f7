package entity

import "time"

// UploadedFile es el registro de un archivo subido al proveedor de
// almacenamiento externo. No se borra automáticamente cuando se borra
// la entidad que lo referencia.
type UploadedFile struct {
	ID        string
	PublicID  string // identificador en el proveedor (ruta dentro del bucket)
	SecureURL string
	FileName  string // nombre original del archivo
	Bytes     int64
	Format    string // jpeg, png, gif
	CreatedAt time.Time
}
