// Package purchases implementa el flujo de órdenes de compra:
// pending → ordered → received, con cancelación desde pending/ordered.
// El stock solo se mueve al recibir la mercancía.
package purchases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-pos/internal/application/dto"
	"github.com/tu-usuario/inventario-pos/internal/application/inventory"
	"github.com/tu-usuario/inventario-pos/internal/domain"
	"github.com/tu-usuario/inventario-pos/internal/domain/entity"
	"github.com/tu-usuario/inventario-pos/internal/domain/repository"
	"github.com/tu-usuario/inventario-pos/pkg/logger"
)

// UseCase flujo de trabajo de órdenes de compra.
type UseCase struct {
	orderRepo    repository.PurchaseOrderRepository
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	stock        *inventory.UseCase
	log          *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	orderRepo repository.PurchaseOrderRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	stock *inventory.UseCase,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		stock:        stock,
		log:          log,
	}
}

// Create crea una orden de compra en estado pending, con snapshot de
// nombre/SKU por ítem y total_cost = Σ cantidad·costo.
func (uc *UseCase) Create(in dto.CreatePurchaseOrderRequest) (*entity.PurchaseOrder, error) {
	if len(in.Items) == 0 || in.WarehouseID == "" || in.SupplierID == "" {
		return nil, domain.ErrInvalidInput
	}
	for _, it := range in.Items {
		if it.ProductID == "" || it.Quantity <= 0 || it.CostPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}

	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	items := make([]entity.PurchaseOrderItem, 0, len(in.Items))
	total := decimal.Zero
	for _, it := range in.Items {
		product, err := uc.productRepo.GetByID(it.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		costPrice := it.CostPrice
		if costPrice.IsZero() {
			costPrice = product.CostPrice
		}
		items = append(items, entity.PurchaseOrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			SKU:         product.SKU,
			Quantity:    it.Quantity,
			CostPrice:   costPrice,
		})
		total = total.Add(costPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	now := time.Now().UTC()
	orderDate := in.OrderDate
	if orderDate == "" {
		orderDate = now.Format(time.RFC3339)
	}

	order := &entity.PurchaseOrder{
		Base: entity.Base{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrderDate:        orderDate,
		SupplierID:       supplier.ID,
		SupplierName:     supplier.Name,
		WarehouseID:      in.WarehouseID,
		Items:            items,
		TotalCost:        total,
		ExpectedDelivery: in.ExpectedDelivery,
		Notes:            in.Notes,
		Status:           entity.PurchaseStatusPending,
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

// GetByID obtiene una orden de compra por ID; nil si no existe.
func (uc *UseCase) GetByID(id string) (*entity.PurchaseOrder, error) {
	return uc.orderRepo.GetByID(id)
}

// List lista órdenes de compra con filtros exactos y paginación.
func (uc *UseCase) List(filter repository.PurchaseOrderFilter) ([]*entity.PurchaseOrder, error) {
	return uc.orderRepo.List(filter)
}

// MarkOrdered transiciona pending → ordered.
func (uc *UseCase) MarkOrdered(id string) (*entity.PurchaseOrder, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.Status != entity.PurchaseStatusPending {
		return nil, fmt.Errorf("la orden está en estado %s: %w", order.Status, domain.ErrConflict)
	}
	order.Status = entity.PurchaseStatusOrdered
	if err := uc.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

// Receive recibe la mercancía: suma el stock de cada ítem en la bodega destino
// y transiciona a received. Solo válido desde pending u ordered. Los fallos de
// stock posteriores a la transición se registran y no revierten la recepción.
func (uc *UseCase) Receive(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.Status != entity.PurchaseStatusPending && order.Status != entity.PurchaseStatusOrdered {
		return nil, fmt.Errorf("la orden está en estado %s: %w", order.Status, domain.ErrConflict)
	}

	order.Status = entity.PurchaseStatusReceived
	if err := uc.orderRepo.Update(order); err != nil {
		return nil, err
	}

	for _, it := range order.Items {
		_, _, err := uc.stock.AdjustStock(ctx, inventory.AdjustStockInput{
			ProductID:      it.ProductID,
			WarehouseID:    order.WarehouseID,
			QuantityChange: it.Quantity,
			MovementType:   entity.MovementTypePurchase,
			ReferenceID:    order.ID,
			ReferenceType:  entity.ReferenceTypePurchaseOrder,
		})
		if err != nil {
			uc.log.Warn().
				Err(err).
				Str("purchase_order_id", order.ID).
				Str("product_id", it.ProductID).
				Int("quantity", it.Quantity).
				Msg("fallo al sumar stock tras recibir la orden de compra; requiere ajuste manual")
		}
	}

	return order, nil
}

// Cancel cancela una orden de compra. No válido desde received (la mercancía
// ya entró) ni desde cancelled. No hay compensación de stock: el stock solo se
// mueve en la recepción.
func (uc *UseCase) Cancel(id string) (*entity.PurchaseOrder, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.Status == entity.PurchaseStatusReceived || order.Status == entity.PurchaseStatusCancelled {
		return nil, fmt.Errorf("la orden está en estado %s: %w", order.Status, domain.ErrConflict)
	}
	order.Status = entity.PurchaseStatusCancelled
	if err := uc.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}
