package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StoreRecord representa un movimiento de bodega: una entrada (compra o
// recepción de insumos) o una salida (consumo, merma, ajuste manual).
//
// IsDebit=true significa que la cantidad sale de bodega; IsDebit=false que
// entra. El sentido del movimiento es inmutable después de creado: las
// ediciones solo tocan ItemID, SupplyID, Amount y PricePerUnit de entradas.
type StoreRecord struct {
	ID                string
	ItemID            string
	ItemName          string          // denormalizado por el backend para listados
	SupplyID          *string         // nil = sin lote de abastecimiento asociado
	SupplierName      string          // denormalizado; vacío si SupplyID es nil
	Amount            decimal.Decimal // cantidad en la unidad de medida del insumo
	PricePerUnit      decimal.Decimal
	IsDebit           bool
	ReportingPeriodID string // asignado por el backend, solo lectura
	Timestamp         time.Time
}
