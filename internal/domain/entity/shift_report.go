package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShiftReport resumen de un turno de caja dentro del período contable activo.
type ShiftReport struct {
	ID           string
	Date         time.Time
	EmployeeName string
	Transactions int
	CashRevenue  decimal.Decimal
	CardRevenue  decimal.Decimal
	TotalRevenue decimal.Decimal
}
