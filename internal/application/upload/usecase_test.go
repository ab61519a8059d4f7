package upload_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tienda-api/internal/application/upload"
	"github.com/tu-usuario/tienda-api/internal/domain"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeProvider proveedor de almacenamiento con comportamiento inyectable.
type fakeProvider struct {
	uploadCalls int
	removeCalls int
	uploadErr   error
	removeErr   error
	// failRemoveID hace fallar Remove solo para ese publicID.
	failRemoveID string
}

func (f *fakeProvider) Upload(_ context.Context, publicID string, _ []byte, _ string) (string, error) {
	f.uploadCalls++
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	return "https://cdn.example.com/" + publicID, nil
}

func (f *fakeProvider) Remove(_ context.Context, publicIDs []string) error {
	f.removeCalls++
	if f.removeErr != nil {
		return f.removeErr
	}
	for _, id := range publicIDs {
		if id == f.failRemoveID {
			return errors.New("objeto bloqueado en el proveedor")
		}
	}
	return nil
}

// fakeUploadRepo repositorio de metadatos en memoria.
type fakeUploadRepo struct {
	files map[string]*entity.UploadedFile
}

func newFakeUploadRepo() *fakeUploadRepo {
	return &fakeUploadRepo{files: make(map[string]*entity.UploadedFile)}
}

func (f *fakeUploadRepo) Create(file *entity.UploadedFile) error {
	cp := *file
	f.files[file.PublicID] = &cp
	return nil
}

func (f *fakeUploadRepo) GetByPublicID(publicID string) (*entity.UploadedFile, error) {
	file, ok := f.files[publicID]
	if !ok {
		return nil, nil
	}
	cp := *file
	return &cp, nil
}

func (f *fakeUploadRepo) List(limit, offset int) ([]*entity.UploadedFile, error) {
	var out []*entity.UploadedFile
	for _, file := range f.files {
		out = append(out, file)
	}
	return out, nil
}

func (f *fakeUploadRepo) DeleteByPublicID(publicID string) error {
	delete(f.files, publicID)
	return nil
}

func newUploadUC() (*upload.UploadUseCase, *fakeProvider, *fakeUploadRepo) {
	provider := &fakeProvider{}
	repo := newFakeUploadRepo()
	return upload.NewUploadUseCase(provider, repo, nil), provider, repo
}

func jpegInput(name string, size int) upload.FileInput {
	return upload.FileInput{
		FileName:    name,
		ContentType: "image/jpeg",
		Data:        bytes.Repeat([]byte{0xFF}, size),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// UploadSingle
// ──────────────────────────────────────────────────────────────────────────────

func TestUploadSingle_ImagenValida(t *testing.T) {
	uc, provider, repo := newUploadUC()

	out, err := uc.UploadSingle(context.Background(), jpegInput("foto.jpg", 1024))
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "foto.jpg", out.FileName)
	assert.Equal(t, int64(1024), out.Bytes)
	assert.Equal(t, "jpeg", out.Format)
	assert.Contains(t, out.SecureURL, out.PublicID)
	assert.Equal(t, 1, provider.uploadCalls)
	assert.Len(t, repo.files, 1, "los metadatos deben persistirse")
}

func TestUploadSingle_TipoNoPermitido_RechazadoAntesDeLaRed(t *testing.T) {
	uc, provider, _ := newUploadUC()

	_, err := uc.UploadSingle(context.Background(), upload.FileInput{
		FileName:    "contrato.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.4"),
	})
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
	assert.Zero(t, provider.uploadCalls, "la validación debe cortar antes de llamar al proveedor")
}

func TestUploadSingle_ArchivoMuyGrande_RechazadoAntesDeLaRed(t *testing.T) {
	uc, provider, _ := newUploadUC()

	_, err := uc.UploadSingle(context.Background(), jpegInput("enorme.jpg", upload.MaxFileBytes+1))
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	assert.Zero(t, provider.uploadCalls)
}

func TestUploadSingle_TimeoutDelProveedor_SeDistingueDeOtrosFallos(t *testing.T) {
	uc, provider, repo := newUploadUC()
	provider.uploadErr = context.DeadlineExceeded

	_, err := uc.UploadSingle(context.Background(), jpegInput("foto.jpg", 1024))
	assert.ErrorIs(t, err, domain.ErrStorageTimeout)
	assert.Empty(t, repo.files, "sin respuesta del proveedor no hay metadatos")

	// Un fallo genérico del proveedor NO debe reportarse como timeout.
	provider.uploadErr = errors.New("bucket inexistente")
	_, err = uc.UploadSingle(context.Background(), jpegInput("foto.jpg", 1024))
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrStorageTimeout)
}

// ──────────────────────────────────────────────────────────────────────────────
// UploadMultiple
// ──────────────────────────────────────────────────────────────────────────────

func TestUploadMultiple_MejorEsfuerzo(t *testing.T) {
	uc, _, repo := newUploadUC()

	files := []upload.FileInput{
		jpegInput("a.jpg", 100),
		{FileName: "b.pdf", ContentType: "application/pdf", Data: []byte("x")},
		jpegInput("c.jpg", 100),
	}
	out, err := uc.UploadMultiple(context.Background(), files)
	require.NoError(t, err)

	assert.Len(t, out.Uploaded, 2, "las imágenes válidas deben subirse")
	require.Len(t, out.Errors, 1, "el PDF debe quedar en la lista de errores")
	assert.Equal(t, "b.pdf", out.Errors[0].FileName)
	assert.Len(t, repo.files, 2)
}

func TestUploadMultiple_LimiteDeArchivos(t *testing.T) {
	uc, _, _ := newUploadUC()

	var files []upload.FileInput
	for i := 0; i <= upload.MaxFiles; i++ {
		files = append(files, jpegInput("f.jpg", 10))
	}
	_, err := uc.UploadMultiple(context.Background(), files)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UploadMultiple(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete / DeleteMany
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_BorraProveedorYMetadatos(t *testing.T) {
	uc, _, repo := newUploadUC()

	out, err := uc.UploadSingle(context.Background(), jpegInput("foto.jpg", 100))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), out.PublicID))
	assert.Empty(t, repo.files)
}

func TestDelete_PublicIDVacio_Rechazado(t *testing.T) {
	uc, _, _ := newUploadUC()
	err := uc.Delete(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeleteMany_ResultadoPorItem(t *testing.T) {
	uc, provider, _ := newUploadUC()
	provider.failRemoveID = "uploads/bloqueado.png"

	out, err := uc.DeleteMany(context.Background(), []string{
		"uploads/a.png",
		"uploads/bloqueado.png",
		"uploads/b.png",
	})
	require.NoError(t, err, "el lote no aborta por un ítem fallido")
	require.Len(t, out.Results, 3)

	assert.True(t, out.Results[0].Deleted)
	assert.False(t, out.Results[1].Deleted)
	assert.NotEmpty(t, out.Results[1].Error)
	assert.True(t, out.Results[2].Deleted)
}

func TestDeleteMany_LoteVacio_Rechazado(t *testing.T) {
	uc, _, _ := newUploadUC()
	_, err := uc.DeleteMany(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
