package remote

import (
	"context"
	"time"

	"github.com/tu-usuario/cafeteria-panel/internal/application/catalog"
	"github.com/tu-usuario/cafeteria-panel/internal/domain/entity"
)

var _ catalog.Gateway = (*CatalogGateway)(nil)

// CatalogGateway lecturas de catálogo contra /items, /supplies y /suppliers.
type CatalogGateway struct {
	c *Client
}

// NewCatalogGateway construye el gateway.
func NewCatalogGateway(c *Client) *CatalogGateway {
	return &CatalogGateway{c: c}
}

type itemWire struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Unit string `json:"unit"`
}

type supplyWire struct {
	ID           string    `json:"id"`
	SupplierID   string    `json:"supplier_id"`
	SupplierName string    `json:"supplier_name"`
	Date         time.Time `json:"date"`
}

type supplierWire struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Items GET /items.
func (g *CatalogGateway) Items(ctx context.Context) ([]entity.Item, error) {
	var wire []itemWire
	if err := g.c.get(ctx, "/items", &wire); err != nil {
		return nil, err
	}
	items := make([]entity.Item, 0, len(wire))
	for _, w := range wire {
		items = append(items, entity.Item{ID: w.ID, Name: w.Name, Unit: w.Unit})
	}
	return items, nil
}

// Supplies GET /supplies.
func (g *CatalogGateway) Supplies(ctx context.Context) ([]entity.Supply, error) {
	var wire []supplyWire
	if err := g.c.get(ctx, "/supplies", &wire); err != nil {
		return nil, err
	}
	supplies := make([]entity.Supply, 0, len(wire))
	for _, w := range wire {
		supplies = append(supplies, entity.Supply{
			ID:           w.ID,
			SupplierID:   w.SupplierID,
			SupplierName: w.SupplierName,
			Date:         w.Date,
		})
	}
	return supplies, nil
}

// Suppliers GET /suppliers.
func (g *CatalogGateway) Suppliers(ctx context.Context) ([]entity.Supplier, error) {
	var wire []supplierWire
	if err := g.c.get(ctx, "/suppliers", &wire); err != nil {
		return nil, err
	}
	suppliers := make([]entity.Supplier, 0, len(wire))
	for _, w := range wire {
		suppliers = append(suppliers, entity.Supplier{ID: w.ID, Name: w.Name, Phone: w.Phone, Email: w.Email})
	}
	return suppliers, nil
}
