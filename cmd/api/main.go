package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/inventario-pos/internal/application/auth"
	"github.com/tu-usuario/inventario-pos/internal/application/inventory"
	"github.com/tu-usuario/inventario-pos/internal/application/purchases"
	"github.com/tu-usuario/inventario-pos/internal/application/reports"
	"github.com/tu-usuario/inventario-pos/internal/application/sales"
	"github.com/tu-usuario/inventario-pos/internal/application/usecase"
	"github.com/tu-usuario/inventario-pos/internal/infrastructure/excel"
	infrapdf "github.com/tu-usuario/inventario-pos/internal/infrastructure/pdf"
	"github.com/tu-usuario/inventario-pos/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/inventario-pos/internal/interfaces/http"
	"github.com/tu-usuario/inventario-pos/pkg/config"
	"github.com/tu-usuario/inventario-pos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	salesOrderRepo := postgres.NewSalesOrderRepository(pool)
	purchaseOrderRepo := postgres.NewPurchaseOrderRepository(pool)
	movementRepo := postgres.NewInventoryMovementRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	inventoryUC := inventory.NewUseCase(txRunner, productRepo, movementRepo)
	salesUC := sales.NewUseCase(salesOrderRepo, productRepo, customerRepo, inventoryUC, log.Component("sales"))
	purchasesUC := purchases.NewUseCase(purchaseOrderRepo, productRepo, supplierRepo, inventoryUC, log.Component("purchases"))
	reportsUC := reports.NewUseCase(salesOrderRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	authUC := auth.NewUseCase(userRepo, auditRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log.Component("auth"))

	receipt := infrapdf.NewReceiptGenerator(cfg.App.Name)
	exporter := excel.NewExporter()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		CategoryUC:  categoryUC,
		SupplierUC:  supplierUC,
		CustomerUC:  customerUC,
		WarehouseUC: warehouseUC,
		InventoryUC: inventoryUC,
		SalesUC:     salesUC,
		PurchasesUC: purchasesUC,
		ReportsUC:   reportsUC,
		AuthUC:      authUC,
		Receipt:     receipt,
		Exporter:    exporter,
		JWTSecret:   cfg.JWT.Secret,
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

	log.Info().Msg("aplicación detenida")
}
