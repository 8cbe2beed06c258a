package remote

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	appstore "github.com/tu-usuario/cafeteria-panel/internal/application/store"
	"github.com/tu-usuario/cafeteria-panel/internal/domain/entity"
)

// Verificar en tiempo de compilación que StoreGateway implementa el puerto.
var _ appstore.Gateway = (*StoreGateway)(nil)

// StoreGateway gateway de bodega contra /store-items.
type StoreGateway struct {
	c *Client
}

// NewStoreGateway construye el gateway.
func NewStoreGateway(c *Client) *StoreGateway {
	return &StoreGateway{c: c}
}

// ── Formato de cable ──────────────────────────────────────────────────────────

type storeItemWire struct {
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

func (w storeItemWire) toEntity() entity.StoreRecord {
	return entity.StoreRecord{
		ID:                w.ID,
		ItemID:            w.ItemID,
		ItemName:          w.ItemName,
		SupplyID:          w.SupplyID,
		SupplierName:      w.Supplier,
		Amount:            w.Amount,
		PricePerUnit:      w.PricePerUnit,
		IsDebit:           w.Debit,
		ReportingPeriodID: w.ReportingPeriodID,
		Timestamp:         w.Date,
	}
}

// storeItemBody cuerpo de creación/reemplazo. SupplyID nil viaja como null,
// nunca como "": el backend distingue "sin lote" de "lote inválido".
type storeItemBody struct {
	ItemID       string          `json:"item_id"`
	SupplyID     *string         `json:"supply_id"`
	Amount       decimal.Decimal `json:"amount"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
}

type calculationWire struct {
	ItemID   string          `json:"item_id"`
	ItemName string          `json:"item_name"`
	Amount   decimal.Decimal `json:"amount"`
}

type removeBody struct {
	ItemID       string          `json:"item_id"`
	Amount       decimal.Decimal `json:"amount"`
	PricePerItem decimal.Decimal `json:"price_per_item"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// ListRecords GET /store-items.
func (g *StoreGateway) ListRecords(ctx context.Context) ([]entity.StoreRecord, error) {
	var wire []storeItemWire
	if err := g.c.get(ctx, "/store-items", &wire); err != nil {
		return nil, err
	}
	records := make([]entity.StoreRecord, 0, len(wire))
	for _, w := range wire {
		records = append(records, w.toEntity())
	}
	return records, nil
}

// ListStockLevels GET /store-items/calculation (existencias autoritativas).
func (g *StoreGateway) ListStockLevels(ctx context.Context) ([]entity.StockLevel, error) {
	var wire []calculationWire
	if err := g.c.get(ctx, "/store-items/calculation", &wire); err != nil {
		return nil, err
	}
	levels := make([]entity.StockLevel, 0, len(wire))
	for _, w := range wire {
		levels = append(levels, entity.StockLevel{
			ItemID:   w.ItemID,
			ItemName: w.ItemName,
			Amount:   w.Amount,
		})
	}
	return levels, nil
}

// CreateRecord POST /store-items.
func (g *StoreGateway) CreateRecord(ctx context.Context, p appstore.RecordPayload) (*entity.StoreRecord, error) {
	var wire storeItemWire
	body := storeItemBody{
		ItemID:       p.ItemID,
		SupplyID:     p.SupplyID,
		Amount:       p.Amount,
		PricePerUnit: p.PricePerUnit,
	}
	if err := g.c.post(ctx, "/store-items", body, &wire); err != nil {
		return nil, err
	}
	rec := wire.toEntity()
	return &rec, nil
}

// ReplaceRecord PUT /store-items/{id} (reemplazo total de campos mutables).
func (g *StoreGateway) ReplaceRecord(ctx context.Context, id string, p appstore.RecordPayload) (*entity.StoreRecord, error) {
	var wire storeItemWire
	body := storeItemBody{
		ItemID:       p.ItemID,
		SupplyID:     p.SupplyID,
		Amount:       p.Amount,
		PricePerUnit: p.PricePerUnit,
	}
	if err := g.c.put(ctx, "/store-items/"+id, body, &wire); err != nil {
		return nil, err
	}
	rec := wire.toEntity()
	return &rec, nil
}

// RemoveStock POST /store-items/remove: salida directa, sin lote asociado.
func (g *StoreGateway) RemoveStock(ctx context.Context, itemID string, amount, pricePerItem decimal.Decimal) error {
	body := removeBody{
		ItemID:       itemID,
		Amount:       amount,
		PricePerItem: pricePerItem,
	}
	return g.c.post(ctx, "/store-items/remove", body, nil)
}
