package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cafeteria-panel/internal/application/dto"
	"github.com/tu-usuario/cafeteria-panel/internal/domain"
)

// errorJSON traduce el error de dominio a la respuesta HTTP del panel. Los
// rechazos del backend conservan su status y su detalle tal cual; el resto
// colapsa a los códigos propios del panel.
func errorJSON(c *fiber.Ctx, err error) error {
	if be := domain.AsBackendError(err); be != nil {
		return c.Status(be.Status).JSON(dto.ErrorResponse{Code: "BACKEND_REJECTED", Message: be.Error()})
	}
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: "la sesión expiró, inicia sesión de nuevo"})
	case errors.Is(err, domain.ErrOpInFlight):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "OP_IN_FLIGHT", Message: domain.ErrOpInFlight.Error()})
	case errors.Is(err, domain.ErrTransport):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: domain.ErrTransport.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
