package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/tienda-api/internal/domain"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-api/internal/domain/repository"
)

var _ repository.UploadRepository = (*UploadRepo)(nil)

// UploadRepo implementación del puerto UploadRepository sobre PostgreSQL.
type UploadRepo struct {
	q Querier
}

// NewUploadRepository construye el adaptador de persistencia para metadatos de subidas.
func NewUploadRepository(q Querier) *UploadRepo {
	return &UploadRepo{q: q}
}

// Create persiste los metadatos de un archivo subido.
func (r *UploadRepo) Create(file *entity.UploadedFile) error {
	query := `
		INSERT INTO uploads (id, public_id, secure_url, file_name, bytes, format, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		file.ID, file.PublicID, file.SecureURL, file.FileName, file.Bytes,
		file.Format, file.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert upload: %w", err)
	}
	return nil
}

// GetByPublicID obtiene los metadatos por identificador del proveedor; nil si no existe.
func (r *UploadRepo) GetByPublicID(publicID string) (*entity.UploadedFile, error) {
	query := `
		SELECT id, public_id, secure_url, file_name, bytes, format, created_at
		FROM uploads WHERE public_id = $1`
	var f entity.UploadedFile
	err := r.q.QueryRow(context.Background(), query, publicID).Scan(
		&f.ID, &f.PublicID, &f.SecureURL, &f.FileName, &f.Bytes, &f.Format, &f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get upload: %w", err)
	}
	return &f, nil
}

// List lista metadatos de subidas con paginación.
func (r *UploadRepo) List(limit, offset int) ([]*entity.UploadedFile, error) {
	query := `
		SELECT id, public_id, secure_url, file_name, bytes, format, created_at
		FROM uploads ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list uploads: %w", err)
	}
	defer rows.Close()
	var list []*entity.UploadedFile
	for rows.Next() {
		var f entity.UploadedFile
		if err := rows.Scan(&f.ID, &f.PublicID, &f.SecureURL, &f.FileName, &f.Bytes, &f.Format, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan upload: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// DeleteByPublicID borra los metadatos por identificador del proveedor.
// Borrar un registro inexistente no es error (el borrado remoto ya ocurrió).
func (r *UploadRepo) DeleteByPublicID(publicID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM uploads WHERE public_id = $1`, publicID)
	if err != nil {
		return fmt.Errorf("delete upload: %w", err)
	}
	return nil
}
