// Package reports expone los reportes de turno del período contable activo y
// su exportación a PDF para impresión o archivo.
package reports

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafeteria-panel/internal/application/dto"
	"github.com/tu-usuario/cafeteria-panel/internal/domain/entity"
)

// Gateway puerto de lectura hacia /shift-reports.
type Gateway interface {
	ShiftReports(ctx context.Context) ([]entity.ShiftReport, error)
}

// PDFGenerator genera el PDF imprimible del resumen de turnos.
type PDFGenerator interface {
	GenerateShiftReportPDF(ctx context.Context, shopName string, reports []entity.ShiftReport, total decimal.Decimal) ([]byte, error)
}

// UseCase lectura y exportación de reportes de turno.
type UseCase struct {
	gw       Gateway
	pdf      PDFGenerator
	shopName string
}

// New construye el caso de uso.
func New(gw Gateway, pdf PDFGenerator, shopName string) *UseCase {
	return &UseCase{gw: gw, pdf: pdf, shopName: shopName}
}

// List devuelve los turnos del período, más recientes primero, con el total
// acumulado de ingresos.
func (uc *UseCase) List(ctx context.Context) (*dto.ShiftReportListResponse, error) {
	reports, err := uc.fetchSorted(ctx)
	if err != nil {
		return nil, err
	}
	out := dto.ShiftReportListResponse{
		Reports:      make([]dto.ShiftReportResponse, 0, len(reports)),
		TotalRevenue: totalRevenue(reports),
	}
	for _, r := range reports {
		out.Reports = append(out.Reports, dto.ToShiftReportResponse(r))
	}
	return &out, nil
}

// ExportPDF genera el PDF del resumen de turnos del período.
func (uc *UseCase) ExportPDF(ctx context.Context) ([]byte, error) {
	reports, err := uc.fetchSorted(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateShiftReportPDF(ctx, uc.shopName, reports, totalRevenue(reports))
}

func (uc *UseCase) fetchSorted(ctx context.Context) ([]entity.ShiftReport, error) {
	reports, err := uc.gw.ShiftReports(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Date.After(reports[j].Date)
	})
	return reports, nil
}

func totalRevenue(reports []entity.ShiftReport) decimal.Decimal {
	total := decimal.Zero
	for _, r := range reports {
		total = total.Add(r.TotalRevenue)
	}
	return total
}
