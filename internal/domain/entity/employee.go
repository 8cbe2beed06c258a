package entity

// Employee empleado de la cafetería (barista, cajero, administrador).
type Employee struct {
	ID       string
	Name     string
	Phone    string
	Position string
}
