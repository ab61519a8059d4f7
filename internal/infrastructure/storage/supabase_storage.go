// Package storage implementa el proveedor de objetos sobre Supabase Storage.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	storagego "github.com/supabase-community/storage-go"

	"github.com/tu-usuario/tienda-api/internal/application/upload"
)

var _ upload.StorageProvider = (*SupabaseStorage)(nil)

// SupabaseStorage adaptador del cliente de Supabase Storage al puerto
// upload.StorageProvider. El bucket debe existir y ser público.
type SupabaseStorage struct {
	client  *storagego.Client
	bucket  string
	baseURL string
}

// NewSupabaseStorage construye el adaptador. projectURL es la URL raíz del
// proyecto Supabase (sin /storage/v1).
func NewSupabaseStorage(projectURL, serviceKey, bucket string) *SupabaseStorage {
	baseURL := strings.TrimRight(projectURL, "/")
	client := storagego.NewClient(baseURL+"/storage/v1", serviceKey, nil)
	return &SupabaseStorage{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}
}

// Upload sube el archivo al bucket y devuelve la URL pública.
// El cliente de Supabase no acepta context, así que la llamada corre en una
// goroutine y se abandona si el ctx expira antes (la goroutine termina sola).
func (s *SupabaseStorage) Upload(ctx context.Context, publicID string, data []byte, contentType string) (string, error) {
	upsert := false
	done := make(chan error, 1)
	go func() {
		_, err := s.client.UploadFile(s.bucket, publicID, bytes.NewReader(data), storagego.FileOptions{
			ContentType: &contentType,
			Upsert:      &upsert,
		})
		done <- err
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case err := <-done:
		if err != nil {
			return "", fmt.Errorf("subir archivo a storage: %w", err)
		}
	}
	return s.publicURL(publicID), nil
}

// Remove elimina uno o más objetos del bucket.
func (s *SupabaseStorage) Remove(ctx context.Context, publicIDs []string) error {
	done := make(chan error, 1)
	go func() {
		_, err := s.client.RemoveFile(s.bucket, publicIDs)
		done <- err
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return fmt.Errorf("eliminar archivo de storage: %w", err)
		}
	}
	return nil
}

// publicURL arma la URL pública de un objeto del bucket.
func (s *SupabaseStorage) publicURL(publicID string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, publicID)
}
