package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafeteria-panel/internal/domain/entity"
)

// Puertos hacia el API remoto para las entidades administrables del panel.
// Las implementaciones reales viven en infrastructure/remote.

// CategoryGateway CRUD de categorías de la carta.
type CategoryGateway interface {
	List(ctx context.Context) ([]entity.Category, error)
	Create(ctx context.Context, name string) (*entity.Category, error)
	Update(ctx context.Context, id, name string) (*entity.Category, error)
	Delete(ctx context.Context, id string) error
}

// ProductPayload campos de creación/edición de un producto (reemplazo total).
type ProductPayload struct {
	Name       string
	CategoryID string
	Price      decimal.Decimal
	ImageURL   string
}

// ProductGateway CRUD de productos de la carta.
type ProductGateway interface {
	List(ctx context.Context) ([]entity.Product, error)
	Create(ctx context.Context, p ProductPayload) (*entity.Product, error)
	Update(ctx context.Context, id string, p ProductPayload) (*entity.Product, error)
	Delete(ctx context.Context, id string) error
}

// EmployeePayload campos de creación/edición de un empleado.
type EmployeePayload struct {
	Name     string
	Phone    string
	Position string
}

// EmployeeGateway CRUD de empleados.
type EmployeeGateway interface {
	List(ctx context.Context) ([]entity.Employee, error)
	Create(ctx context.Context, p EmployeePayload) (*entity.Employee, error)
	Update(ctx context.Context, id string, p EmployeePayload) (*entity.Employee, error)
	Delete(ctx context.Context, id string) error
}

// SupplierPayload campos de creación/edición de un proveedor.
type SupplierPayload struct {
	Name  string
	Phone string
	Email string
}

// SupplierGateway CRUD de proveedores.
type SupplierGateway interface {
	List(ctx context.Context) ([]entity.Supplier, error)
	Create(ctx context.Context, p SupplierPayload) (*entity.Supplier, error)
	Update(ctx context.Context, id string, p SupplierPayload) (*entity.Supplier, error)
	Delete(ctx context.Context, id string) error
}

// SupplyGateway alta y baja de lotes de abastecimiento. Los lotes no se
// editan: un lote equivocado se elimina y se registra de nuevo.
type SupplyGateway interface {
	List(ctx context.Context) ([]entity.Supply, error)
	Create(ctx context.Context, supplierID string, date *time.Time) (*entity.Supply, error)
	Delete(ctx context.Context, id string) error
}
