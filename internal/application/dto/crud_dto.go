package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafeteria-panel/internal/domain/entity"
)

// ── Categorías ────────────────────────────────────────────────────────────────

// SaveCategoryRequest entrada para crear o renombrar una categoría.
type SaveCategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse categoría de la carta.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ── Productos ─────────────────────────────────────────────────────────────────

// SaveProductRequest entrada para crear o editar un producto. Price llega
// como texto con separador decimal libre, igual que las cantidades de bodega.
type SaveProductRequest struct {
	Name       string `json:"name"`
	CategoryID string `json:"category_id"`
	Price      string `json:"price"`
	ImageURL   string `json:"image_url"`
}

// ProductResponse producto de la carta.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Price        decimal.Decimal `json:"price"`
	ImageURL     string          `json:"image_url"`
}

// ── Empleados ─────────────────────────────────────────────────────────────────

// SaveEmployeeRequest entrada para crear o editar un empleado.
type SaveEmployeeRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Position string `json:"position"`
}

// EmployeeResponse empleado de la cafetería.
type EmployeeResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Position string `json:"position"`
}

// ── Proveedores ───────────────────────────────────────────────────────────────

// SaveSupplierRequest entrada para crear o editar un proveedor.
type SaveSupplierRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// ── Lotes de abastecimiento ───────────────────────────────────────────────────

// CreateSupplyRequest entrada para registrar una entrega de proveedor.
// Date vacío equivale a "hoy" (lo resuelve el backend).
type CreateSupplyRequest struct {
	SupplierID string     `json:"supplier_id"`
	Date       *time.Time `json:"date"`
}

// ── Conversores ───────────────────────────────────────────────────────────────

// ToCategoryResponse convierte la entidad al DTO de salida.
func ToCategoryResponse(c entity.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}

// ToProductResponse convierte la entidad al DTO de salida.
func ToProductResponse(p entity.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		Price:        p.Price,
		ImageURL:     p.ImageURL,
	}
}

// ToEmployeeResponse convierte la entidad al DTO de salida.
func ToEmployeeResponse(e entity.Employee) EmployeeResponse {
	return EmployeeResponse{ID: e.ID, Name: e.Name, Phone: e.Phone, Position: e.Position}
}
