package entity

// Item insumo de bodega (café, leche, vasos...). Unit es la unidad de medida
// en la que se expresan todos los movimientos del insumo (kg, l, unidad).
type Item struct {
	ID   string
	Name string
	Unit string
}
