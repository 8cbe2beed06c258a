// Package catalog expone los modelos de lectura que alimentan los
// formularios del panel: insumos, lotes de abastecimiento y proveedores.
package catalog

import (
	"context"

	"github.com/tu-usuario/cafeteria-panel/internal/domain/entity"
)

// Gateway puerto de lectura hacia /items, /supplies y /suppliers.
type Gateway interface {
	Items(ctx context.Context) ([]entity.Item, error)
	Supplies(ctx context.Context) ([]entity.Supply, error)
	Suppliers(ctx context.Context) ([]entity.Supplier, error)
}

// FormData todo lo que necesita el formulario del libro de bodega: el
// selector de insumo, el selector de lote y los nombres de proveedor.
type FormData struct {
	Items     []entity.Item
	Supplies  []entity.Supply
	Suppliers []entity.Supplier
}

// UseCase lecturas de catálogo. Sin caché: el panel pide fresco en cada
// apertura de formulario y el backend es la única fuente de verdad.
type UseCase struct {
	gw Gateway
}

// New construye el caso de uso.
func New(gw Gateway) *UseCase {
	return &UseCase{gw: gw}
}

// Items devuelve el catálogo de insumos.
func (uc *UseCase) Items(ctx context.Context) ([]entity.Item, error) {
	return uc.gw.Items(ctx)
}

// Supplies devuelve los lotes de abastecimiento registrados.
func (uc *UseCase) Supplies(ctx context.Context) ([]entity.Supply, error) {
	return uc.gw.Supplies(ctx)
}

// Suppliers devuelve los proveedores.
func (uc *UseCase) Suppliers(ctx context.Context) ([]entity.Supplier, error) {
	return uc.gw.Suppliers(ctx)
}

// FormData carga en secuencia los tres catálogos del formulario de bodega.
// Si cualquiera falla, falla todo: un formulario a medias confunde más que
// un error franco.
func (uc *UseCase) FormData(ctx context.Context) (*FormData, error) {
	items, err := uc.gw.Items(ctx)
	if err != nil {
		return nil, err
	}
	supplies, err := uc.gw.Supplies(ctx)
	if err != nil {
		return nil, err
	}
	suppliers, err := uc.gw.Suppliers(ctx)
	if err != nil {
		return nil, err
	}
	return &FormData{Items: items, Supplies: supplies, Suppliers: suppliers}, nil
}
