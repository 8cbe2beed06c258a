package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cafeteria-panel/internal/application/catalog"
	"github.com/tu-usuario/cafeteria-panel/internal/application/reports"
	appstore "github.com/tu-usuario/cafeteria-panel/internal/application/store"
	"github.com/tu-usuario/cafeteria-panel/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StoreUC    *appstore.UseCase
	CatalogUC  *catalog.UseCase
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	EmployeeUC *usecase.EmployeeUseCase
	SupplierUC *usecase.SupplierUseCase
	SupplyUC   *usecase.SupplyUseCase
	ReportsUC  *reports.UseCase
}

// Router registra las rutas del panel. Todo va detrás del middleware de
// sesión: el panel no tiene rutas de negocio públicas.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", SessionMiddleware())

	// Libro de bodega (protegido)
	store := api.Group("/store")
	storeHandler := NewStoreHandler(deps.StoreUC)
	store.Get("/", storeHandler.GetView)
	store.Post("/records", storeHandler.CreateRecord)
	store.Put("/records/:id", storeHandler.UpdateRecord)
	store.Post("/remove", storeHandler.RemoveStock)
	store.Get("/stock-levels/derived", storeHandler.GetDerivedLevels)

	// Catálogos de formulario (protegido)
	cat := api.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	cat.Get("/store-form", catalogHandler.GetStoreForm)
	cat.Get("/items", catalogHandler.GetItems)

	// Categorías (protegido)
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Productos (protegido)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Empleados (protegido)
	employees := api.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	// Proveedores (protegido)
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Lotes de abastecimiento (protegido)
	supplies := api.Group("/supplies")
	supplyHandler := NewSupplyHandler(deps.SupplyUC)
	supplies.Get("/", supplyHandler.List)
	supplies.Post("/", supplyHandler.Create)
	supplies.Delete("/:id", supplyHandler.Delete)

	// Reportes de turno (protegido)
	rep := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportsUC)
	rep.Get("/shifts", reportHandler.ListShifts)
	rep.Get("/shifts/pdf", reportHandler.ExportShiftsPDF)
}
