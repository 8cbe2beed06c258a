package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cafeteria-panel/internal/application/dto"
	"github.com/tu-usuario/cafeteria-panel/internal/application/usecase"
)

// SupplyHandler maneja las peticiones HTTP de lotes de abastecimiento (protegido).
type SupplyHandler struct {
	uc *usecase.SupplyUseCase
}

// NewSupplyHandler construye el handler.
func NewSupplyHandler(uc *usecase.SupplyUseCase) *SupplyHandler {
	return &SupplyHandler{uc: uc}
}

// List godoc
// @Summary      Listar lotes de abastecimiento
// @Tags         supplies
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SupplyResponse
// @Router       /api/supplies [get]
func (h *SupplyHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Registrar entrega de proveedor
// @Tags         supplies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplyRequest  true  "supplier_id, date (opcional, vacío = hoy)"
// @Success      201   {object}  dto.SupplyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/supplies [post]
func (h *SupplyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	created, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Delete godoc
// @Summary      Eliminar lote de abastecimiento
// @Tags         supplies
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del lote"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/supplies/{id} [delete]
func (h *SupplyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "lote eliminado"})
}
