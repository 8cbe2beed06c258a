// Package store contiene la lógica de dominio de la bodega: la agregación de
// existencias a partir de los movimientos y el parseo de cantidades.
package store

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafeteria-panel/internal/domain/entity"
)

// Aggregate calcula las existencias netas por insumo a partir de los
// movimientos: neto = Σ(entradas) − Σ(salidas). El orden de los movimientos
// no afecta el resultado.
//
// Replica el cálculo que hace el backend en /store-items/calculation, de modo
// que el resultado sirve como sustituto directo de esa lista cuando se quiere
// una vista fresca sin viaje de red. Netos negativos se devuelven tal cual:
// la no-negatividad la decide el backend, no el panel.
func Aggregate(records []entity.StoreRecord) []entity.StockLevel {
	net := make(map[string]decimal.Decimal, len(records))
	names := make(map[string]string, len(records))

	for _, r := range records {
		if r.IsDebit {
			net[r.ItemID] = net[r.ItemID].Sub(r.Amount)
		} else {
			net[r.ItemID] = net[r.ItemID].Add(r.Amount)
		}
		if r.ItemName != "" {
			names[r.ItemID] = r.ItemName
		}
	}

	levels := make([]entity.StockLevel, 0, len(net))
	for itemID, amount := range net {
		levels = append(levels, entity.StockLevel{
			ItemID:   itemID,
			ItemName: names[itemID],
			Amount:   amount,
		})
	}

	// Orden estable para la tabla del panel: por nombre y, a igualdad, por ID.
	sort.Slice(levels, func(i, j int) bool {
		if levels[i].ItemName != levels[j].ItemName {
			return levels[i].ItemName < levels[j].ItemName
		}
		return levels[i].ItemID < levels[j].ItemID
	})
	return levels
}
