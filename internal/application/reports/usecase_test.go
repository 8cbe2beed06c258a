package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cafeteria-panel/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeReportsGateway struct {
	reports []entity.ShiftReport
	err     error
}

func (f *fakeReportsGateway) ShiftReports(context.Context) ([]entity.ShiftReport, error) {
	return f.reports, f.err
}

type fakePDF struct {
	gotShop  string
	gotTotal decimal.Decimal
	gotCount int
}

func (f *fakePDF) GenerateShiftReportPDF(_ context.Context, shopName string, reports []entity.ShiftReport, total decimal.Decimal) ([]byte, error) {
	f.gotShop = shopName
	f.gotTotal = total
	f.gotCount = len(reports)
	return []byte("%PDF-falso"), nil
}

func shift(id string, day int, total string) entity.ShiftReport {
	return entity.ShiftReport{
		ID:           id,
		Date:         time.Date(2026, 8, day, 20, 0, 0, 0, time.UTC),
		TotalRevenue: decimal.RequireFromString(total),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Los turnos llegan desordenados del backend; la lista sale del más reciente
// al más antiguo y con los ingresos acumulados.
func TestList_OrdenaDescendenteYAcumula(t *testing.T) {
	gw := &fakeReportsGateway{reports: []entity.ShiftReport{
		shift("s1", 10, "100.50"),
		shift("s3", 30, "80"),
		shift("s2", 20, "19.50"),
	}}
	uc := New(gw, &fakePDF{}, "Cafetería Centro")

	out, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Reports, 3)

	assert.Equal(t, "s3", out.Reports[0].ID)
	assert.Equal(t, "s2", out.Reports[1].ID)
	assert.Equal(t, "s1", out.Reports[2].ID)
	assert.True(t, out.TotalRevenue.Equal(decimal.RequireFromString("200")),
		"total esperado 200, obtuvo %s", out.TotalRevenue)
}

func TestList_PropagaErrorDelBackend(t *testing.T) {
	gw := &fakeReportsGateway{err: errors.New("backend caído")}
	uc := New(gw, &fakePDF{}, "Cafetería Centro")

	_, err := uc.List(context.Background())
	require.Error(t, err)
}

// El PDF recibe el nombre del local, todos los turnos y el total acumulado.
func TestExportPDF_PasaNombreTurnosYTotal(t *testing.T) {
	gw := &fakeReportsGateway{reports: []entity.ShiftReport{
		shift("s1", 10, "60"),
		shift("s2", 11, "40"),
	}}
	pdf := &fakePDF{}
	uc := New(gw, pdf, "Cafetería Centro")

	raw, err := uc.ExportPDF(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, raw)

	assert.Equal(t, "Cafetería Centro", pdf.gotShop)
	assert.Equal(t, 2, pdf.gotCount)
	assert.True(t, pdf.gotTotal.Equal(decimal.RequireFromString("100")))
}
