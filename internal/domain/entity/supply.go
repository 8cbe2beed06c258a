package entity

import "time"

// Supply lote de abastecimiento: una entrega de un proveedor en una fecha.
// Las entradas de bodega pueden referenciarlo; las salidas nunca.
type Supply struct {
	ID           string
	SupplierID   string
	SupplierName string
	Date         time.Time
}
