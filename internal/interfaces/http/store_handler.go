package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cafeteria-panel/internal/application/dto"
	appstore "github.com/tu-usuario/cafeteria-panel/internal/application/store"
)

// StoreHandler maneja las peticiones HTTP del libro de bodega (protegido).
type StoreHandler struct {
	uc *appstore.UseCase
}

// NewStoreHandler construye el handler.
func NewStoreHandler(uc *appstore.UseCase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

// GetView godoc
// @Summary      Vista completa del libro de bodega
// @Description  Recarga movimientos y existencias del backend y devuelve el
//
//	view-model: si la recarga falla, los datos previos siguen
//	presentes y el campo error trae el mensaje vigente.
//
// @Tags         store
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StoreViewResponse
// @Router       /api/store [get]
func (h *StoreHandler) GetView(c *fiber.Ctx) error {
	// El error de carga no corta la respuesta: viaja dentro del view-model.
	_ = h.uc.Load(c.UserContext())
	return c.JSON(toStoreView(h.uc.Snapshot()))
}

// CreateRecord godoc
// @Summary      Registrar una entrada de bodega
// @Tags         store
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStoreRecordRequest  true  "item_id, supply_id (opcional), amount, price_per_unit"
// @Success      201   {object}  dto.StoreRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/store/records [post]
func (h *StoreHandler) CreateRecord(c *fiber.Ctx) error {
	var in dto.CreateStoreRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	created, err := h.uc.CreateAddition(c.UserContext(), appstore.NewRecordInput{
		ItemID:       in.ItemID,
		SupplyID:     in.SupplyID,
		Amount:       in.Amount,
		PricePerUnit: in.PricePerUnit,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToStoreRecordResponse(*created))
}

// UpdateRecord godoc
// @Summary      Editar una entrada existente
// @Description  Reemplazo total de los campos mutables del movimiento; no
//
//	acepta parches parciales.
//
// @Tags         store
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del movimiento"
// @Param        body  body  dto.CreateStoreRecordRequest  true  "conjunto completo de campos"
// @Success      200   {object}  dto.StoreRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/store/records/{id} [put]
func (h *StoreHandler) UpdateRecord(c *fiber.Ctx) error {
	var in dto.CreateStoreRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	updated, err := h.uc.UpdateAddition(c.UserContext(), c.Params("id"), appstore.NewRecordInput{
		ItemID:       in.ItemID,
		SupplyID:     in.SupplyID,
		Amount:       in.Amount,
		PricePerUnit: in.PricePerUnit,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.ToStoreRecordResponse(*updated))
}

// RemoveStock godoc
// @Summary      Dar salida a un insumo
// @Description  Registra una retirada directa. No se bloquea por encima del
//
//	stock actual: esa validación, si aplica, la impone el backend.
//
// @Tags         store
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RemoveStockRequest  true  "item_id, amount, price_per_item (opcional)"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/store/remove [post]
func (h *StoreHandler) RemoveStock(c *fiber.Ctx) error {
	var in dto.RemoveStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.RemoveStock(c.UserContext(), in.ItemID, in.Amount, in.PricePerItem); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "salida registrada"})
}

// GetDerivedLevels godoc
// @Summary      Existencias re-derivadas localmente
// @Description  Agrega los movimientos ya cargados sin viaje de red. Útil
//
//	para contrastar contra la lista autoritativa del backend.
//
// @Tags         store
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockLevelResponse
// @Router       /api/store/stock-levels/derived [get]
func (h *StoreHandler) GetDerivedLevels(c *fiber.Ctx) error {
	levels := h.uc.DeriveLevels()
	out := make([]dto.StockLevelResponse, 0, len(levels))
	for _, l := range levels {
		out = append(out, dto.ToStockLevelResponse(l))
	}
	return c.JSON(out)
}

// toStoreView convierte el snapshot del view-model al DTO de salida.
func toStoreView(s appstore.Snapshot) dto.StoreViewResponse {
	out := dto.StoreViewResponse{
		Records:     make([]dto.StoreRecordResponse, 0, len(s.Records)),
		StockLevels: make([]dto.StockLevelResponse, 0, len(s.StockLevels)),
		Loading:     s.Loading,
		Error:       s.Err,
	}
	for _, r := range s.Records {
		out.Records = append(out.Records, dto.ToStoreRecordResponse(r))
	}
	for _, l := range s.StockLevels {
		out.StockLevels = append(out.StockLevels, dto.ToStockLevelResponse(l))
	}
	return out
}
