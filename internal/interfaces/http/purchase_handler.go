package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-pos/internal/application/dto"
	"github.com/tu-usuario/inventario-pos/internal/application/purchases"
	"github.com/tu-usuario/inventario-pos/internal/domain/repository"
)

// PurchaseHandler maneja las peticiones HTTP del flujo de compras.
type PurchaseHandler struct {
	uc *purchases.UseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(uc *purchases.UseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

// List lista órdenes de compra; admite ?supplier_id=, ?warehouse_id=, ?status=.
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 0), Offset: c.QueryInt("skip", 0)}
	page.DefaultPage()
	out, err := h.uc.List(repository.PurchaseOrderFilter{
		SupplierID:  c.Query("supplier_id"),
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

// Create crea una orden de compra en estado pending.
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, out)
}

// GetByID obtiene una orden de compra por ID.
func (h *PurchaseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "orden de compra no encontrada")
	}
	return respondData(c, fiber.StatusOK, out)
}

// MarkOrdered transiciona la orden a ordered.
func (h *PurchaseHandler) MarkOrdered(c *fiber.Ctx) error {
	out, err := h.uc.MarkOrdered(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

// Receive recibe la mercancía y suma el stock.
func (h *PurchaseHandler) Receive(c *fiber.Ctx) error {
	out, err := h.uc.Receive(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

// Cancel cancela la orden de compra.
func (h *PurchaseHandler) Cancel(c *fiber.Ctx) error {
	out, err := h.uc.Cancel(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}
