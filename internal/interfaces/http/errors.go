package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/tienda-api/internal/application/dto"
	"github.com/tu-usuario/tienda-api/pkg/logger"
)

// msgInternal mensaje genérico para fallos inesperados. El detalle real nunca
// viaja al cliente; queda solo en el log del servidor.
const msgInternal = "error interno"

// internalError registra la causa completa (operación y ruta incluidas) en el
// log del servidor y responde 500 con el mensaje genérico.
func internalError(c *fiber.Ctx, log *logger.Logger, op string, err error) error {
	if log != nil {
		log.Error().Err(err).Str("operacion", op).Str("ruta", c.Path()).Msg("fallo interno")
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: msgInternal})
}
