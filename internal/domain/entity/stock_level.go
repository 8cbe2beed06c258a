package entity

import "github.com/shopspring/decimal"

// StockLevel existencias netas de un insumo en el período contable activo.
// Derivado de los movimientos; el backend lo recalcula en cada consulta y el
// panel lo trata como modelo de lectura (nunca lo persiste localmente).
type StockLevel struct {
	ItemID   string
	ItemName string
	Amount   decimal.Decimal // puede ser negativo; la política de no-negatividad es del backend
}
