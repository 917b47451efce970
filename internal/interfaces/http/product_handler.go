package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-pos/internal/application/dto"
	"github.com/tu-usuario/inventario-pos/internal/application/inventory"
	"github.com/tu-usuario/inventario-pos/internal/application/usecase"
	"github.com/tu-usuario/inventario-pos/internal/infrastructure/excel"
)

// ProductHandler maneja las peticiones HTTP para productos.
type ProductHandler struct {
	uc       *usecase.ProductUseCase
	stock    *inventory.UseCase
	exporter *excel.Exporter
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, stock *inventory.UseCase, exporter *excel.Exporter) *ProductHandler {
	return &ProductHandler{uc: uc, stock: stock, exporter: exporter}
}

// List lista productos; admite ?search=, ?category_id=, ?warehouse_id=,
// ?limit= y ?skip=.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	filter := dto.ProductListFilter{
		Search:      c.Query("search"),
		CategoryID:  c.Query("category_id"),
		WarehouseID: c.Query("warehouse_id"),
		PageRequest: dto.PageRequest{
			Limit:  c.QueryInt("limit", 0),
			Offset: c.QueryInt("skip", 0),
		},
	}
	out, err := h.uc.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, out, len(out))
}

// Create crea un producto. 400 si faltan nombre/SKU, 409 si el SKU ya existe.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, out)
}

// GetByID obtiene un producto por ID.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "producto no encontrado")
	}
	return respondData(c, fiber.StatusOK, out)
}

// Update actualiza un producto; campos ausentes no se tocan.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

// Delete desactiva el producto (borrado suave).
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, fiber.Map{"deleted": true})
}

// LowStock productos en o por debajo de su punto de reorden; admite ?warehouse_id=.
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.stock.ListLowStock(c.Query("warehouse_id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, out, len(out))
}

// AdjustStock ajuste directo de stock de un producto en una bodega.
func (h *ProductHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "cuerpo inválido")
	}
	product, movement, err := h.stock.AdjustStock(c.Context(), inventory.AdjustStockInput{
		ProductID:      c.Params("id"),
		WarehouseID:    in.WarehouseID,
		QuantityChange: in.QuantityChange,
		MovementType:   in.MovementType,
		ReferenceID:    in.ReferenceID,
		ReferenceType:  in.ReferenceType,
		Notes:          in.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, fiber.Map{
		"product":  product,
		"movement": movement,
	})
}

// Movements historial de movimientos del producto; admite ?limit=.
func (h *ProductHandler) Movements(c *fiber.Ctx) error {
	out, err := h.stock.ListMovements(c.Params("id"), c.QueryInt("limit", 50))
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, out, len(out))
}

// Similar hasta 10 productos activos de la misma categoría.
func (h *ProductHandler) Similar(c *fiber.Ctx) error {
	out, err := h.uc.Similar(c.Params("id"), 10)
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, out, len(out))
}

// Export descarga el listado de productos como XLSX.
func (h *ProductHandler) Export(c *fiber.Ctx) error {
	products, err := h.uc.List(dto.ProductListFilter{
		PageRequest: dto.PageRequest{Limit: 10000},
	})
	if err != nil {
		return respondError(c, err)
	}
	data, err := h.exporter.ExportProducts(products)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="productos.xlsx"`)
	return c.Send(data)
}
