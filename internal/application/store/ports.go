package store

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafeteria-panel/internal/domain/entity"
)

// RecordPayload conjunto completo de campos mutables de un movimiento de
// entrada. Las ediciones son siempre de reemplazo total, no parches parciales.
type RecordPayload struct {
	ItemID       string
	SupplyID     *string // nil = sin lote; nunca cadena vacía
	Amount       decimal.Decimal
	PricePerUnit decimal.Decimal
}

// Gateway puerto hacia el API remoto de la bodega. La implementación real
// vive en infrastructure/remote; los tests inyectan un fake.
type Gateway interface {
	// ListRecords devuelve el libro de movimientos del período activo.
	ListRecords(ctx context.Context) ([]entity.StoreRecord, error)
	// ListStockLevels devuelve las existencias calculadas por el backend
	// (la fuente autoritativa; el agregador local solo re-deriva la vista).
	ListStockLevels(ctx context.Context) ([]entity.StockLevel, error)
	// CreateRecord registra una entrada (IsDebit=false).
	CreateRecord(ctx context.Context, p RecordPayload) (*entity.StoreRecord, error)
	// ReplaceRecord reemplaza los campos mutables de una entrada existente.
	ReplaceRecord(ctx context.Context, id string, p RecordPayload) (*entity.StoreRecord, error)
	// RemoveStock registra una salida directa, sin lote asociado.
	RemoveStock(ctx context.Context, itemID string, amount, pricePerItem decimal.Decimal) error
}
