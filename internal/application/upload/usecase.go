package upload

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/tienda-api/internal/application/dto"
	"github.com/tu-usuario/tienda-api/internal/domain"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-api/internal/domain/repository"
	"github.com/tu-usuario/tienda-api/pkg/logger"
)

// Límites del subsistema de archivos. Se validan ANTES de tocar la red.
const (
	MaxFileBytes = 5 << 20 // 5 MiB
	MaxFiles     = 10      // máximo de archivos por subida múltiple

	// providerTimeout acota la espera por el proveedor; vencido el plazo la
	// operación se abandona y se reporta como timeout, no como fallo del
	// proveedor.
	providerTimeout = 30 * time.Second
)

// allowedTypes tipos MIME aceptados y su formato canónico.
var allowedTypes = map[string]string{
	"image/jpeg": "jpeg",
	"image/png":  "png",
	"image/gif":  "gif",
}

// FileInput un archivo en memoria listo para validar y subir.
type FileInput struct {
	FileName    string
	ContentType string
	Data        []byte
}

// UploadUseCase valida archivos, los reenvía al proveedor externo y persiste
// los metadatos resultantes.
type UploadUseCase struct {
	provider StorageProvider
	repo     repository.UploadRepository
	log      *logger.Logger
}

// NewUploadUseCase construye el caso de uso.
func NewUploadUseCase(provider StorageProvider, repo repository.UploadRepository, log *logger.Logger) *UploadUseCase {
	return &UploadUseCase{provider: provider, repo: repo, log: log}
}

// validate aplica la lista blanca de MIME y el límite de tamaño.
func validate(in FileInput) (format string, err error) {
	format, ok := allowedTypes[strings.ToLower(in.ContentType)]
	if !ok {
		return "", domain.ErrUnsupportedFileType
	}
	if int64(len(in.Data)) > MaxFileBytes {
		return "", domain.ErrFileTooLarge
	}
	return format, nil
}

// UploadSingle valida y sube un archivo; si el proveedor responde, persiste
// los metadatos y los devuelve.
func (uc *UploadUseCase) UploadSingle(ctx context.Context, in FileInput) (*dto.UploadResponse, error) {
	format, err := validate(in)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	ext := path.Ext(in.FileName)
	if ext == "" {
		ext = "." + format
	}
	publicID := fmt.Sprintf("uploads/%s%s", id, ext)

	callCtx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()
	secureURL, err := uc.provider.Upload(callCtx, publicID, in.Data, in.ContentType)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, domain.ErrStorageTimeout
		}
		return nil, fmt.Errorf("subir archivo al proveedor: %w", err)
	}

	file := &entity.UploadedFile{
		ID:        id,
		PublicID:  publicID,
		SecureURL: secureURL,
		FileName:  in.FileName,
		Bytes:     int64(len(in.Data)),
		Format:    format,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(file); err != nil {
		return nil, fmt.Errorf("guardar metadatos de subida: %w", err)
	}
	return toUploadResponse(file), nil
}

// UploadMultiple sube hasta MaxFiles archivos con semántica de mejor esfuerzo:
// cada archivo se valida y sube por separado y los fallos quedan en la lista
// de errores de la respuesta, sin abortar el resto.
func (uc *UploadUseCase) UploadMultiple(ctx context.Context, files []FileInput) (*dto.MultiUploadResponse, error) {
	if len(files) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if len(files) > MaxFiles {
		return nil, domain.ErrInvalidInput
	}
	out := &dto.MultiUploadResponse{
		Uploaded: make([]dto.UploadResponse, 0, len(files)),
	}
	for _, f := range files {
		resp, err := uc.UploadSingle(ctx, f)
		if err != nil {
			uc.logItemError("subir archivo", f.FileName, err)
			out.Errors = append(out.Errors, dto.UploadErrorInfo{
				FileName: f.FileName,
				Error:    clientMessage(err),
			})
			continue
		}
		out.Uploaded = append(out.Uploaded, *resp)
	}
	return out, nil
}

// Delete borra un archivo en el proveedor por su publicID (pasamanos, sin
// verificar existencia local) y elimina el registro de metadatos si lo hay.
func (uc *UploadUseCase) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return domain.ErrInvalidInput
	}
	callCtx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()
	if err := uc.provider.Remove(callCtx, []string{publicID}); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return domain.ErrStorageTimeout
		}
		return fmt.Errorf("borrar archivo en el proveedor: %w", err)
	}
	// Metadatos huérfanos no bloquean el borrado remoto.
	if err := uc.repo.DeleteByPublicID(publicID); err != nil {
		return fmt.Errorf("borrar metadatos de subida: %w", err)
	}
	return nil
}

// DeleteMany borra varios archivos con semántica de mejor esfuerzo: cada
// publicID se procesa por separado y el resultado por archivo queda explícito
// en la respuesta.
func (uc *UploadUseCase) DeleteMany(ctx context.Context, publicIDs []string) (*dto.DeleteUploadResponse, error) {
	if len(publicIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	out := &dto.DeleteUploadResponse{
		Results: make([]dto.DeleteResultItem, 0, len(publicIDs)),
	}
	for _, id := range publicIDs {
		item := dto.DeleteResultItem{PublicID: id, Deleted: true}
		if err := uc.Delete(ctx, id); err != nil {
			uc.logItemError("borrar archivo", id, err)
			item.Deleted = false
			item.Error = clientMessage(err)
		}
		out.Results = append(out.Results, item)
	}
	return out, nil
}

// List lista metadatos de subidas con paginación.
func (uc *UploadUseCase) List(limit, offset int) ([]dto.UploadResponse, error) {
	files, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UploadResponse, 0, len(files))
	for _, f := range files {
		out = append(out, *toUploadResponse(f))
	}
	return out, nil
}

// clientMessage texto apto para el cliente de un fallo por ítem: los errores
// de negocio conservan su mensaje; cualquier otro se reporta genérico y el
// detalle queda solo en el log del servidor.
func clientMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnsupportedFileType),
		errors.Is(err, domain.ErrFileTooLarge),
		errors.Is(err, domain.ErrStorageTimeout),
		errors.Is(err, domain.ErrInvalidInput):
		return err.Error()
	default:
		return "error interno"
	}
}

func (uc *UploadUseCase) logItemError(op, name string, err error) {
	if uc.log != nil {
		uc.log.Error().Err(err).Str("operacion", op).Str("archivo", name).Msg("fallo por ítem")
	}
}

func toUploadResponse(f *entity.UploadedFile) *dto.UploadResponse {
	if f == nil {
		return nil
	}
	return &dto.UploadResponse{
		ID:        f.ID,
		PublicID:  f.PublicID,
		SecureURL: f.SecureURL,
		FileName:  f.FileName,
		Bytes:     f.Bytes,
		Format:    f.Format,
		CreatedAt: f.CreatedAt,
	}
}
