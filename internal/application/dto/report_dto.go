package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafeteria-panel/internal/domain/entity"
)

// ShiftReportResponse resumen de un turno de caja.
type ShiftReportResponse struct {
	ID           string          `json:"id"`
	Date         time.Time       `json:"date"`
	EmployeeName string          `json:"employee_name"`
	Transactions int             `json:"transactions"`
	CashRevenue  decimal.Decimal `json:"cash_revenue"`
	CardRevenue  decimal.Decimal `json:"card_revenue"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// ShiftReportListResponse turnos del período más los totales acumulados.
type ShiftReportListResponse struct {
	Reports      []ShiftReportResponse `json:"reports"`
	TotalRevenue decimal.Decimal       `json:"total_revenue"`
}

// ToShiftReportResponse convierte la entidad al DTO de salida.
func ToShiftReportResponse(r entity.ShiftReport) ShiftReportResponse {
	return ShiftReportResponse{
		ID:           r.ID,
		Date:         r.Date,
		EmployeeName: r.EmployeeName,
		Transactions: r.Transactions,
		CashRevenue:  r.CashRevenue,
		CardRevenue:  r.CardRevenue,
		TotalRevenue: r.TotalRevenue,
	}
}
