package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pos-backoffice/internal/application/dto"
	"github.com/rs/zerolog/log"
)

// internalError responde 500 con un mensaje fijo y registra el detalle en el
// log del servidor. El texto crudo del driver nunca viaja al cliente.
func internalError(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
}
