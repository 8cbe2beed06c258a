package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cafeteria-panel/internal/application/catalog"
	"github.com/tu-usuario/cafeteria-panel/internal/application/dto"
)

// CatalogHandler maneja las lecturas de catálogo que alimentan los
// formularios del panel (protegido).
type CatalogHandler struct {
	uc *catalog.UseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.UseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// GetStoreForm godoc
// @Summary      Catálogos del formulario de bodega
// @Description  Insumos, lotes de abastecimiento y proveedores en una sola
//
//	respuesta. Si cualquiera de los tres falla, falla todo.
//
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StoreFormResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/catalog/store-form [get]
func (h *CatalogHandler) GetStoreForm(c *fiber.Ctx) error {
	data, err := h.uc.FormData(c.UserContext())
	if err != nil {
		return errorJSON(c, err)
	}
	out := dto.StoreFormResponse{
		Items:     make([]dto.ItemResponse, 0, len(data.Items)),
		Supplies:  make([]dto.SupplyResponse, 0, len(data.Supplies)),
		Suppliers: make([]dto.SupplierResponse, 0, len(data.Suppliers)),
	}
	for _, i := range data.Items {
		out.Items = append(out.Items, dto.ToItemResponse(i))
	}
	for _, s := range data.Supplies {
		out.Supplies = append(out.Supplies, dto.ToSupplyResponse(s))
	}
	for _, s := range data.Suppliers {
		out.Suppliers = append(out.Suppliers, dto.ToSupplierResponse(s))
	}
	return c.JSON(out)
}

// GetItems godoc
// @Summary      Catálogo de insumos
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/catalog/items [get]
func (h *CatalogHandler) GetItems(c *fiber.Ctx) error {
	items, err := h.uc.Items(c.UserContext())
	if err != nil {
		return errorJSON(c, err)
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, dto.ToItemResponse(i))
	}
	return c.JSON(out)
}
