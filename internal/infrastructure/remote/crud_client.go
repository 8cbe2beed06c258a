package remote

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafeteria-panel/internal/application/usecase"
	"github.com/tu-usuario/cafeteria-panel/internal/domain/entity"
)

// Gateways CRUD contra el API remoto para las entidades administrables.

var (
	_ usecase.CategoryGateway = (*CategoryGateway)(nil)
	_ usecase.ProductGateway  = (*ProductGateway)(nil)
	_ usecase.EmployeeGateway = (*EmployeeGateway)(nil)
	_ usecase.SupplierGateway = (*SupplierGateway)(nil)
	_ usecase.SupplyGateway   = (*SupplyGateway)(nil)
)

// ── Categorías ────────────────────────────────────────────────────────────────

// CategoryGateway CRUD contra /categories.
type CategoryGateway struct {
	c *Client
}

// NewCategoryGateway construye el gateway.
func NewCategoryGateway(c *Client) *CategoryGateway {
	return &CategoryGateway{c: c}
}

type categoryWire struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type categoryBody struct {
	Name string `json:"name"`
}

func (g *CategoryGateway) List(ctx context.Context) ([]entity.Category, error) {
	var wire []categoryWire
	if err := g.c.get(ctx, "/categories", &wire); err != nil {
		return nil, err
	}
	out := make([]entity.Category, 0, len(wire))
	for _, w := range wire {
		out = append(out, entity.Category{ID: w.ID, Name: w.Name})
	}
	return out, nil
}

func (g *CategoryGateway) Create(ctx context.Context, name string) (*entity.Category, error) {
	var wire categoryWire
	if err := g.c.post(ctx, "/categories", categoryBody{Name: name}, &wire); err != nil {
		return nil, err
	}
	return &entity.Category{ID: wire.ID, Name: wire.Name}, nil
}

func (g *CategoryGateway) Update(ctx context.Context, id, name string) (*entity.Category, error) {
	var wire categoryWire
	if err := g.c.put(ctx, "/categories/"+id, categoryBody{Name: name}, &wire); err != nil {
		return nil, err
	}
	return &entity.Category{ID: wire.ID, Name: wire.Name}, nil
}

func (g *CategoryGateway) Delete(ctx context.Context, id string) error {
	return g.c.del(ctx, "/categories/"+id)
}

// ── Productos ─────────────────────────────────────────────────────────────────

// ProductGateway CRUD contra /products.
type ProductGateway struct {
	c *Client
}

// NewProductGateway construye el gateway.
func NewProductGateway(c *Client) *ProductGateway {
	return &ProductGateway{c: c}
}

type productWire struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Price        decimal.Decimal `json:"price"`
	ImageURL     string          `json:"image_url"`
}

func (w productWire) toEntity() entity.Product {
	return entity.Product{
		ID:           w.ID,
		Name:         w.Name,
		CategoryID:   w.CategoryID,
		CategoryName: w.CategoryName,
		Price:        w.Price,
		ImageURL:     w.ImageURL,
	}
}

type productBody struct {
	Name       string          `json:"name"`
	CategoryID string          `json:"category_id"`
	Price      decimal.Decimal `json:"price"`
	ImageURL   string          `json:"image_url"`
}

func productBodyFrom(p usecase.ProductPayload) productBody {
	return productBody{
		Name:       p.Name,
		CategoryID: p.CategoryID,
		Price:      p.Price,
		ImageURL:   p.ImageURL,
	}
}

func (g *ProductGateway) List(ctx context.Context) ([]entity.Product, error) {
	var wire []productWire
	if err := g.c.get(ctx, "/products", &wire); err != nil {
		return nil, err
	}
	out := make([]entity.Product, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toEntity())
	}
	return out, nil
}

func (g *ProductGateway) Create(ctx context.Context, p usecase.ProductPayload) (*entity.Product, error) {
	var wire productWire
	if err := g.c.post(ctx, "/products", productBodyFrom(p), &wire); err != nil {
		return nil, err
	}
	prod := wire.toEntity()
	return &prod, nil
}

func (g *ProductGateway) Update(ctx context.Context, id string, p usecase.ProductPayload) (*entity.Product, error) {
	var wire productWire
	if err := g.c.put(ctx, "/products/"+id, productBodyFrom(p), &wire); err != nil {
		return nil, err
	}
	prod := wire.toEntity()
	return &prod, nil
}

func (g *ProductGateway) Delete(ctx context.Context, id string) error {
	return g.c.del(ctx, "/products/"+id)
}

// ── Empleados ─────────────────────────────────────────────────────────────────

// EmployeeGateway CRUD contra /employees.
type EmployeeGateway struct {
	c *Client
}

// NewEmployeeGateway construye el gateway.
func NewEmployeeGateway(c *Client) *EmployeeGateway {
	return &EmployeeGateway{c: c}
}

type employeeWire struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Position string `json:"position"`
}

type employeeBody struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Position string `json:"position"`
}

func (g *EmployeeGateway) List(ctx context.Context) ([]entity.Employee, error) {
	var wire []employeeWire
	if err := g.c.get(ctx, "/employees", &wire); err != nil {
		return nil, err
	}
	out := make([]entity.Employee, 0, len(wire))
	for _, w := range wire {
		out = append(out, entity.Employee{ID: w.ID, Name: w.Name, Phone: w.Phone, Position: w.Position})
	}
	return out, nil
}

func (g *EmployeeGateway) Create(ctx context.Context, p usecase.EmployeePayload) (*entity.Employee, error) {
	var wire employeeWire
	body := employeeBody{Name: p.Name, Phone: p.Phone, Position: p.Position}
	if err := g.c.post(ctx, "/employees", body, &wire); err != nil {
		return nil, err
	}
	return &entity.Employee{ID: wire.ID, Name: wire.Name, Phone: wire.Phone, Position: wire.Position}, nil
}

func (g *EmployeeGateway) Update(ctx context.Context, id string, p usecase.EmployeePayload) (*entity.Employee, error) {
	var wire employeeWire
	body := employeeBody{Name: p.Name, Phone: p.Phone, Position: p.Position}
	if err := g.c.put(ctx, "/employees/"+id, body, &wire); err != nil {
		return nil, err
	}
	return &entity.Employee{ID: wire.ID, Name: wire.Name, Phone: wire.Phone, Position: wire.Position}, nil
}

func (g *EmployeeGateway) Delete(ctx context.Context, id string) error {
	return g.c.del(ctx, "/employees/"+id)
}

// ── Proveedores ───────────────────────────────────────────────────────────────

// SupplierGateway CRUD contra /suppliers.
type SupplierGateway struct {
	c *Client
}

// NewSupplierGateway construye el gateway.
func NewSupplierGateway(c *Client) *SupplierGateway {
	return &SupplierGateway{c: c}
}

type supplierBody struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func (g *SupplierGateway) List(ctx context.Context) ([]entity.Supplier, error) {
	var wire []supplierWire
	if err := g.c.get(ctx, "/suppliers", &wire); err != nil {
		return nil, err
	}
	out := make([]entity.Supplier, 0, len(wire))
	for _, w := range wire {
		out = append(out, entity.Supplier{ID: w.ID, Name: w.Name, Phone: w.Phone, Email: w.Email})
	}
	return out, nil
}

func (g *SupplierGateway) Create(ctx context.Context, p usecase.SupplierPayload) (*entity.Supplier, error) {
	var wire supplierWire
	body := supplierBody{Name: p.Name, Phone: p.Phone, Email: p.Email}
	if err := g.c.post(ctx, "/suppliers", body, &wire); err != nil {
		return nil, err
	}
	return &entity.Supplier{ID: wire.ID, Name: wire.Name, Phone: wire.Phone, Email: wire.Email}, nil
}

func (g *SupplierGateway) Update(ctx context.Context, id string, p usecase.SupplierPayload) (*entity.Supplier, error) {
	var wire supplierWire
	body := supplierBody{Name: p.Name, Phone: p.Phone, Email: p.Email}
	if err := g.c.put(ctx, "/suppliers/"+id, body, &wire); err != nil {
		return nil, err
	}
	return &entity.Supplier{ID: wire.ID, Name: wire.Name, Phone: wire.Phone, Email: wire.Email}, nil
}

func (g *SupplierGateway) Delete(ctx context.Context, id string) error {
	return g.c.del(ctx, "/suppliers/"+id)
}

// ── Lotes de abastecimiento ───────────────────────────────────────────────────

// SupplyGateway alta y baja contra /supplies.
type SupplyGateway struct {
	c *Client
}

// NewSupplyGateway construye el gateway.
func NewSupplyGateway(c *Client) *SupplyGateway {
	return &SupplyGateway{c: c}
}

type supplyBody struct {
	SupplierID string     `json:"supplier_id"`
	Date       *time.Time `json:"date,omitempty"`
}

func (g *SupplyGateway) List(ctx context.Context) ([]entity.Supply, error) {
	var wire []supplyWire
	if err := g.c.get(ctx, "/supplies", &wire); err != nil {
		return nil, err
	}
	out := make([]entity.Supply, 0, len(wire))
	for _, w := range wire {
		out = append(out, entity.Supply{ID: w.ID, SupplierID: w.SupplierID, SupplierName: w.SupplierName, Date: w.Date})
	}
	return out, nil
}

func (g *SupplyGateway) Create(ctx context.Context, supplierID string, date *time.Time) (*entity.Supply, error) {
	var wire supplyWire
	if err := g.c.post(ctx, "/supplies", supplyBody{SupplierID: supplierID, Date: date}, &wire); err != nil {
		return nil, err
	}
	return &entity.Supply{ID: wire.ID, SupplierID: wire.SupplierID, SupplierName: wire.SupplierName, Date: wire.Date}, nil
}

func (g *SupplyGateway) Delete(ctx context.Context, id string) error {
	return g.c.del(ctx, "/supplies/"+id)
}
