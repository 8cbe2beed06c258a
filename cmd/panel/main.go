package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/cafeteria-panel/internal/application/catalog"
	"github.com/tu-usuario/cafeteria-panel/internal/application/reports"
	appstore "github.com/tu-usuario/cafeteria-panel/internal/application/store"
	"github.com/tu-usuario/cafeteria-panel/internal/application/usecase"
	infrapdf "github.com/tu-usuario/cafeteria-panel/internal/infrastructure/pdf"
	"github.com/tu-usuario/cafeteria-panel/internal/infrastructure/remote"
	httpRouter "github.com/tu-usuario/cafeteria-panel/internal/interfaces/http"
	"github.com/tu-usuario/cafeteria-panel/pkg/config"
	"github.com/tu-usuario/cafeteria-panel/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("remote", cfg.Remote.BaseURL).
		Msg("iniciando panel")

	// Cliente hacia el API de la cafetería y sus gateways
	client := remote.NewClient(cfg.Remote.BaseURL, cfg.Remote.Timeout(), log)
	storeGW := remote.NewStoreGateway(client)
	catalogGW := remote.NewCatalogGateway(client)
	categoryGW := remote.NewCategoryGateway(client)
	productGW := remote.NewProductGateway(client)
	employeeGW := remote.NewEmployeeGateway(client)
	supplierGW := remote.NewSupplierGateway(client)
	supplyGW := remote.NewSupplyGateway(client)
	reportsGW := remote.NewReportsGateway(client)

	storeUC := appstore.New(storeGW)
	catalogUC := catalog.New(catalogGW)
	categoryUC := usecase.NewCategoryUseCase(categoryGW)
	productUC := usecase.NewProductUseCase(productGW)
	employeeUC := usecase.NewEmployeeUseCase(employeeGW)
	supplierUC := usecase.NewSupplierUseCase(supplierGW)
	supplyUC := usecase.NewSupplyUseCase(supplyGW)

	// PDF: resumen imprimible de los turnos del período
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	reportsUC := reports.New(reportsGW, pdfGenerator, cfg.App.ShopName)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	mountDocs(app, log, "./docs/swagger.json")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StoreUC:    storeUC,
		CatalogUC:  catalogUC,
		CategoryUC: categoryUC,
		ProductUC:  productUC,
		EmployeeUC: employeeUC,
		SupplierUC: supplierUC,
		SupplyUC:   supplyUC,
		ReportsUC:  reportsUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("panel detenido")
}

// mountDocs monta el Swagger UI (http://localhost:<port>/docs) solo si el
// spec generado existe. El middleware de swagger lee el archivo en New() y
// entra en pánico si falta; sin el archivo el panel arranca igual, solo que
// sin la ruta /docs.
func mountDocs(app *fiber.App, log *logger.Logger, specPath string) {
	if _, err := os.Stat(specPath); err != nil {
		log.Warn().Str("path", specPath).Msg("swagger.json no encontrado, ruta /docs deshabilitada")
		return
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: specPath,
		Path:     "docs",
		Title:    "Cafetería Panel",
	}))
}
