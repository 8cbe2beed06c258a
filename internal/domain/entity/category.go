package entity

// Category categoría de la carta (bebidas calientes, postres...).
type Category struct {
	ID   string
	Name string
}
