package http

import (
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/tienda-api/internal/application/dto"
	"github.com/tu-usuario/tienda-api/internal/application/upload"
	"github.com/tu-usuario/tienda-api/internal/domain"
	"github.com/tu-usuario/tienda-api/pkg/logger"
)

// UploadHandler maneja la subida y el borrado de archivos (protegido).
type UploadHandler struct {
	uc  *upload.UploadUseCase
	log *logger.Logger
}

// NewUploadHandler construye el handler.
func NewUploadHandler(uc *upload.UploadUseCase, log *logger.Logger) *UploadHandler {
	return &UploadHandler{uc: uc, log: log}
}

// readMultipartFile lee el contenido de un archivo del formulario multipart.
func readMultipartFile(fh *multipart.FileHeader) (upload.FileInput, error) {
	f, err := fh.Open()
	if err != nil {
		return upload.FileInput{}, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return upload.FileInput{}, err
	}
	return upload.FileInput{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// uploadErrorStatus mapea los errores de negocio del caso de uso a estados
// HTTP. ok=false cuando el error no es de negocio: esos se tratan como fallo
// interno (mensaje genérico, detalle al log).
func uploadErrorStatus(err error) (int, dto.ErrorResponse, bool) {
	switch err {
	case domain.ErrUnsupportedFileType:
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "UNSUPPORTED_TYPE", Message: "solo se aceptan imágenes jpeg, png o gif"}, true
	case domain.ErrFileTooLarge:
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: "el archivo supera el límite de 5 MB"}, true
	case domain.ErrStorageTimeout:
		return fiber.StatusGatewayTimeout, dto.ErrorResponse{Code: "STORAGE_TIMEOUT", Message: "el proveedor de almacenamiento no respondió a tiempo"}, true
	case domain.ErrInvalidInput:
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"}, true
	default:
		return 0, dto.ErrorResponse{}, false
	}
}

// UploadSingle godoc
// @Summary      Subir un archivo
// @Tags         upload
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Imagen (jpeg/png/gif, máx. 5 MB)"
// @Success      201   {object}  dto.UploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      504   {object}  dto.ErrorResponse
// @Router       /api/upload/single [post]
func (h *UploadHandler) UploadSingle(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo 'file' requerido"})
	}
	in, err := readMultipartFile(fh)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "no se pudo leer el archivo"})
	}
	out, err := h.uc.UploadSingle(c.Context(), in)
	if err != nil {
		if status, body, ok := uploadErrorStatus(err); ok {
			return c.Status(status).JSON(body)
		}
		return internalError(c, h.log, "subir archivo", err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UploadMultiple godoc
// @Summary      Subir varios archivos (mejor esfuerzo)
// @Tags         upload
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        files  formData  file  true  "Hasta 10 imágenes"
// @Success      200    {object}  dto.MultiUploadResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/upload/multiple [post]
func (h *UploadHandler) UploadMultiple(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "formulario multipart inválido"})
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo 'files' requerido"})
	}
	files := make([]upload.FileInput, 0, len(headers))
	for _, fh := range headers {
		in, err := readMultipartFile(fh)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "no se pudo leer el archivo " + fh.Filename})
		}
		files = append(files, in)
	}
	out, err := h.uc.UploadMultiple(c.Context(), files)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "se admiten entre 1 y 10 archivos"})
		}
		return internalError(c, h.log, "subir archivos", err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar archivos subidos
// @Tags         upload
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.UploadResponse
// @Router       /api/upload/files [get]
func (h *UploadHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return internalError(c, h.log, "listar archivos", err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar archivos por public_id
// @Description  Acepta public_id (único) o public_ids (lote, mejor esfuerzo por ítem).
// @Tags         upload
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DeleteUploadRequest  true  "public_id o public_ids"
// @Success      200   {object}  dto.DeleteUploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/upload/delete [delete]
func (h *UploadHandler) Delete(c *fiber.Ctx) error {
	var in dto.DeleteUploadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ids := in.PublicIDs
	if len(ids) == 0 && in.PublicID != "" {
		ids = []string{in.PublicID}
	}
	if len(ids) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "public_id o public_ids requerido"})
	}
	out, err := h.uc.DeleteMany(c.Context(), ids)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "public_id o public_ids requerido"})
		}
		return internalError(c, h.log, "borrar archivos", err)
	}
	return c.JSON(out)
}
