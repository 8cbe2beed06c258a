package remote

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafeteria-panel/internal/application/reports"
	"github.com/tu-usuario/cafeteria-panel/internal/domain/entity"
)

var _ reports.Gateway = (*ReportsGateway)(nil)

// ReportsGateway lectura de reportes de turno contra /shift-reports.
type ReportsGateway struct {
	c *Client
}

// NewReportsGateway construye el gateway.
func NewReportsGateway(c *Client) *ReportsGateway {
	return &ReportsGateway{c: c}
}

type shiftReportWire struct {
	ID           string          `json:"id"`
	Date         time.Time       `json:"date"`
	EmployeeName string          `json:"employee_name"`
	Transactions int             `json:"transactions"`
	CashRevenue  decimal.Decimal `json:"cash_revenue"`
	CardRevenue  decimal.Decimal `json:"card_revenue"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// ShiftReports GET /shift-reports (turnos del período contable activo).
func (g *ReportsGateway) ShiftReports(ctx context.Context) ([]entity.ShiftReport, error) {
	var wire []shiftReportWire
	if err := g.c.get(ctx, "/shift-reports", &wire); err != nil {
		return nil, err
	}
	out := make([]entity.ShiftReport, 0, len(wire))
	for _, w := range wire {
		out = append(out, entity.ShiftReport{
			ID:           w.ID,
			Date:         w.Date,
			EmployeeName: w.EmployeeName,
			Transactions: w.Transactions,
			CashRevenue:  w.CashRevenue,
			CardRevenue:  w.CardRevenue,
			TotalRevenue: w.TotalRevenue,
		})
	}
	return out, nil
}
