package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cafeteria-panel/internal/application/reports"
)

// ReportHandler maneja las peticiones HTTP de reportes de turno (protegido).
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// ListShifts godoc
// @Summary      Turnos del período contable activo
// @Description  Ordenados del más reciente al más antiguo, con el ingreso
//
//	total acumulado del período.
//
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ShiftReportListResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/reports/shifts [get]
func (h *ReportHandler) ListShifts(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(list)
}

// ExportShiftsPDF godoc
// @Summary      Resumen de turnos en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/reports/shifts/pdf [get]
func (h *ReportHandler) ExportShiftsPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.ExportPDF(c.UserContext())
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="turnos.pdf"`)
	return c.Send(pdfBytes)
}
