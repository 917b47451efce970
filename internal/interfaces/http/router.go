package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-pos/internal/application/auth"
	"github.com/tu-usuario/inventario-pos/internal/application/inventory"
	"github.com/tu-usuario/inventario-pos/internal/application/purchases"
	"github.com/tu-usuario/inventario-pos/internal/application/reports"
	"github.com/tu-usuario/inventario-pos/internal/application/sales"
	"github.com/tu-usuario/inventario-pos/internal/application/usecase"
	"github.com/tu-usuario/inventario-pos/internal/infrastructure/excel"
	"github.com/tu-usuario/inventario-pos/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	CategoryUC  *usecase.CategoryUseCase
	SupplierUC  *usecase.SupplierUseCase
	CustomerUC  *usecase.CustomerUseCase
	WarehouseUC *usecase.WarehouseUseCase
	InventoryUC *inventory.UseCase
	SalesUC     *sales.UseCase
	PurchasesUC *purchases.UseCase
	ReportsUC   *reports.UseCase
	AuthUC      *auth.UseCase
	Receipt     *pdf.ReceiptGenerator
	Exporter    *excel.Exporter
	JWTSecret   string
}

// Router registra las rutas de la API. Las rutas de negocio son públicas; solo
// /api/auth/me exige token.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Products. Las rutas fijas van antes que /:id.
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.InventoryUC, deps.Exporter)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/export", productHandler.Export)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Put("/:id/stock", productHandler.AdjustStock)
	products.Get("/:id/movements", productHandler.Movements)
	products.Get("/:id/similar", productHandler.Similar)

	// Sales
	salesGroup := api.Group("/sales")
	salesHandler := NewSalesHandler(deps.SalesUC, deps.ReportsUC, deps.Receipt, deps.Exporter)
	salesGroup.Get("/", salesHandler.List)
	salesGroup.Post("/", salesHandler.Create)
	salesGroup.Get("/reports/summary", salesHandler.Summary)
	salesGroup.Get("/reports/summary/export", salesHandler.SummaryExport)
	salesGroup.Get("/:id", salesHandler.GetByID)
	salesGroup.Put("/:id", salesHandler.Update)
	salesGroup.Post("/:id/cancel", salesHandler.Cancel)
	salesGroup.Get("/:id/receipt.pdf", salesHandler.Receipt)

	// Purchases
	purchasesGroup := api.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchasesUC)
	purchasesGroup.Get("/", purchaseHandler.List)
	purchasesGroup.Post("/", purchaseHandler.Create)
	purchasesGroup.Get("/:id", purchaseHandler.GetByID)
	purchasesGroup.Post("/:id/order", purchaseHandler.MarkOrdered)
	purchasesGroup.Post("/:id/receive", purchaseHandler.Receive)
	purchasesGroup.Post("/:id/cancel", purchaseHandler.Cancel)

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Customers
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Warehouses
	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)
}
