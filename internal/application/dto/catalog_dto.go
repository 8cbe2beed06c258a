package dto

import (
	"time"

	"github.com/tu-usuario/cafeteria-panel/internal/domain/entity"
)

// ItemResponse insumo del catálogo.
type ItemResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Unit string `json:"unit"`
}

// SupplyResponse lote de abastecimiento.
type SupplyResponse struct {
	ID           string    `json:"id"`
	SupplierID   string    `json:"supplier_id"`
	SupplierName string    `json:"supplier_name"`
	Date         time.Time `json:"date"`
}

// SupplierResponse proveedor.
type SupplierResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// StoreFormResponse catálogos que alimentan el formulario de bodega.
type StoreFormResponse struct {
	Items     []ItemResponse     `json:"items"`
	Supplies  []SupplyResponse   `json:"supplies"`
	Suppliers []SupplierResponse `json:"suppliers"`
}

// ToItemResponse convierte la entidad al DTO de salida.
func ToItemResponse(i entity.Item) ItemResponse {
	return ItemResponse{ID: i.ID, Name: i.Name, Unit: i.Unit}
}

// ToSupplyResponse convierte la entidad al DTO de salida.
func ToSupplyResponse(s entity.Supply) SupplyResponse {
	return SupplyResponse{ID: s.ID, SupplierID: s.SupplierID, SupplierName: s.SupplierName, Date: s.Date}
}

// ToSupplierResponse convierte la entidad al DTO de salida.
func ToSupplierResponse(s entity.Supplier) SupplierResponse {
	return SupplierResponse{ID: s.ID, Name: s.Name, Phone: s.Phone, Email: s.Email}
}
