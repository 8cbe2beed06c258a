package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafeteria-panel/internal/domain/entity"
)

// CreateStoreRecordRequest body para registrar o editar una entrada de
// bodega. Amount y PricePerUnit llegan como texto porque el separador decimal
// depende del teclado del usuario ("5,50" o "5.50").
type CreateStoreRecordRequest struct {
	ItemID       string  `json:"item_id"`
	SupplyID     *string `json:"supply_id"`
	Amount       string  `json:"amount"`
	PricePerUnit string  `json:"price_per_unit"`
}

// RemoveStockRequest body para dar salida a un insumo. PricePerItem es
// opcional; vacío equivale a 0.
type RemoveStockRequest struct {
	ItemID       string `json:"item_id"`
	Amount       string `json:"amount"`
	PricePerItem string `json:"price_per_item"`
}

// StoreRecordResponse un movimiento del libro de bodega.
type StoreRecordResponse struct {
	ID                string          `json:"id"`
	ItemID            string          `json:"item_id"`
	ItemName          string          `json:"item_name"`
	SupplyID          *string         `json:"supply_id"`
	Supplier          string          `json:"supplier"`
	Amount            decimal.Decimal `json:"amount"`
	PricePerUnit      decimal.Decimal `json:"price_per_unit"`
	Debit             bool            `json:"debit"`
	ReportingPeriodID string          `json:"reporting_period_id"`
	Date              time.Time       `json:"date"`
}

// StockLevelResponse existencias netas de un insumo.
type StockLevelResponse struct {
	ItemID   string          `json:"item_id"`
	ItemName string          `json:"item_name"`
	Amount   decimal.Decimal `json:"amount"`
}

// StoreViewResponse el view-model completo que renderiza el panel: libro de
// movimientos, existencias, bandera de carga y el mensaje de error vigente
// (vacío = sin error). Tras un fallo los datos previos siguen presentes.
type StoreViewResponse struct {
	Records     []StoreRecordResponse `json:"records"`
	StockLevels []StockLevelResponse  `json:"stock_levels"`
	Loading     bool                  `json:"loading"`
	Error       string                `json:"error"`
}

// ToStoreRecordResponse convierte la entidad al DTO de salida.
func ToStoreRecordResponse(r entity.StoreRecord) StoreRecordResponse {
	return StoreRecordResponse{
		ID:                r.ID,
		ItemID:            r.ItemID,
		ItemName:          r.ItemName,
		SupplyID:          r.SupplyID,
		Supplier:          r.SupplierName,
		Amount:            r.Amount,
		PricePerUnit:      r.PricePerUnit,
		Debit:             r.IsDebit,
		ReportingPeriodID: r.ReportingPeriodID,
		Date:              r.Timestamp,
	}
}

// ToStockLevelResponse convierte la entidad al DTO de salida.
func ToStockLevelResponse(l entity.StockLevel) StockLevelResponse {
	return StockLevelResponse{
		ItemID:   l.ItemID,
		ItemName: l.ItemName,
		Amount:   l.Amount,
	}
}
