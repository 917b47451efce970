package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-pos/internal/application/dto"
	"github.com/tu-usuario/inventario-pos/internal/application/reports"
	"github.com/tu-usuario/inventario-pos/internal/application/sales"
	"github.com/tu-usuario/inventario-pos/internal/domain/repository"
	"github.com/tu-usuario/inventario-pos/internal/infrastructure/excel"
	"github.com/tu-usuario/inventario-pos/internal/infrastructure/pdf"
)

// SalesHandler maneja las peticiones HTTP del flujo de ventas y sus reportes.
type SalesHandler struct {
	uc       *sales.UseCase
	reports  *reports.UseCase
	receipt  *pdf.ReceiptGenerator
	exporter *excel.Exporter
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *sales.UseCase, reportsUC *reports.UseCase, receipt *pdf.ReceiptGenerator, exporter *excel.Exporter) *SalesHandler {
	return &SalesHandler{uc: uc, reports: reportsUC, receipt: receipt, exporter: exporter}
}

// List lista órdenes; admite ?customer_id=, ?warehouse_id=, ?status=, ?limit=, ?skip=.
func (h *SalesHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 0), Offset: c.QueryInt("skip", 0)}
	page.DefaultPage()
	out, err := h.uc.List(repository.SalesOrderFilter{
		CustomerID:  c.Query("customer_id"),
		WarehouseID: c.Query("warehouse_id"),
		Status:      c.Query("status"),
		Limit:       page.Limit,
		Offset:      page.Offset,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, out, len(out))
}

// Create crea una orden de venta. 400 si no hay stock suficiente.
func (h *SalesHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSalesOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, out)
}

// GetByID obtiene una orden por ID.
func (h *SalesHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "orden no encontrada")
	}
	return respondData(c, fiber.StatusOK, out)
}

// Update actualiza los campos editables de la orden.
func (h *SalesHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSalesOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

// Cancel cancela la orden y repone el stock.
func (h *SalesHandler) Cancel(c *fiber.Ctx) error {
	out, err := h.uc.Cancel(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

// Summary resumen de ventas del rango ?start_date=...&end_date=...&warehouse_id=.
func (h *SalesHandler) Summary(c *fiber.Ctx) error {
	out, err := h.reports.SalesSummary(
		c.Query("start_date"),
		c.Query("end_date"),
		c.Query("warehouse_id"),
	)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

// SummaryExport descarga el resumen de ventas como XLSX.
func (h *SalesHandler) SummaryExport(c *fiber.Ctx) error {
	summary, err := h.reports.SalesSummary(
		c.Query("start_date"),
		c.Query("end_date"),
		c.Query("warehouse_id"),
	)
	if err != nil {
		return respondError(c, err)
	}
	data, err := h.exporter.ExportSalesSummary(summary)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="resumen_ventas.xlsx"`)
	return c.Send(data)
}

// Receipt descarga el recibo de la orden en PDF.
func (h *SalesHandler) Receipt(c *fiber.Ctx) error {
	order, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if order == nil {
		return respondNotFound(c, "orden no encontrada")
	}
	data, err := h.receipt.GenerateReceipt(order)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="recibo_`+order.ID+`.pdf"`)
	return c.Send(data)
}
