package dto

import "time"

// UploadResponse metadatos de un archivo subido al proveedor.
type UploadResponse struct {
	ID        string    `json:"id"`
	PublicID  string    `json:"public_id"`
	SecureURL string    `json:"secure_url"`
	FileName  string    `json:"file_name"`
	Bytes     int64     `json:"bytes"`
	Format    string    `json:"format"`
	CreatedAt time.Time `json:"created_at"`
}

// UploadErrorInfo error por archivo en subidas múltiples (mejor esfuerzo).
type UploadErrorInfo struct {
	FileName string `json:"file_name"`
	Error    string `json:"error"`
}

// MultiUploadResponse resultado de una subida múltiple: lo que entró y lo que falló.
type MultiUploadResponse struct {
	Uploaded []UploadResponse  `json:"uploaded"`
	Errors   []UploadErrorInfo `json:"errors,omitempty"`
}

// DeleteUploadRequest entrada para borrar uno o varios archivos por public_id.
type DeleteUploadRequest struct {
	PublicID  string   `json:"public_id"`
	PublicIDs []string `json:"public_ids"` // para borrado múltiple
}

// DeleteResultItem resultado por archivo de un borrado múltiple (mejor esfuerzo).
type DeleteResultItem struct {
	PublicID string `json:"public_id"`
	Deleted  bool   `json:"deleted"`
	Error    string `json:"error,omitempty"`
}

// DeleteUploadResponse resultado del borrado.
type DeleteUploadResponse struct {
	Results []DeleteResultItem `json:"results"`
}
