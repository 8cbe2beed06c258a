package entity

// Supplier proveedor de insumos de la cafetería.
type Supplier struct {
	ID    string
	Name  string
	Phone string
	Email string
}
