package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-pos/internal/application/dto"
	"github.com/tu-usuario/inventario-pos/internal/application/inventory"
	"github.com/tu-usuario/inventario-pos/internal/domain"
	"github.com/tu-usuario/inventario-pos/internal/domain/entity"
)

// Create crea una orden de venta: verifica disponibilidad por ítem, toma una
// instantánea de nombre/SKU del producto, calcula el total, persiste la orden
// y descuenta stock por cada ítem.
//
// Si un descuento de stock falla después de persistir la orden, el fallo se
// registra en el log y la orden NO se revierte: el inventario puede quedar
// temporalmente desincronizado y se corrige con un ajuste manual.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateSalesOrderRequest) (*entity.SalesOrder, error) {
	if len(in.Items) == 0 || in.WarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.OrderStatusCompleted
	}
	if status != entity.OrderStatusDraft && status != entity.OrderStatusCompleted {
		return nil, domain.ErrInvalidInput
	}
	paymentStatus := in.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = entity.PaymentStatusPending
	}
	if !validPaymentStatus(paymentStatus) {
		return nil, domain.ErrInvalidInput
	}
	paymentMethod := in.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "cash"
	}

	for _, it := range in.Items {
		if it.ProductID == "" || it.Quantity <= 0 || it.UnitPrice == nil {
			return nil, domain.ErrInvalidInput
		}
		if it.UnitPrice.IsNegative() || it.Discount.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}

	// Verificación de disponibilidad y snapshot de producto por ítem.
	// La verificación y el descuento posterior no son atómicos entre sí: una
	// escritura concurrente puede ganar la carrera y el descuento perdedor
	// terminará en el log (ver abajo).
	items := make([]entity.SalesOrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		product, err := uc.productRepo.GetByID(it.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		available := product.StockAt(in.WarehouseID)
		if available < it.Quantity {
			return nil, &domain.InsufficientStockError{
				ProductID:   product.ID,
				ProductName: product.Name,
				Available:   available,
				Requested:   it.Quantity,
			}
		}
		items = append(items, entity.SalesOrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			SKU:         product.SKU,
			Quantity:    it.Quantity,
			UnitPrice:   *it.UnitPrice,
			Discount:    it.Discount,
			BatchNo:     it.BatchNo,
			ExpiryDate:  it.ExpiryDate,
		})
	}

	now := time.Now().UTC()
	orderDate := in.OrderDate
	if orderDate == "" {
		orderDate = now.Format(time.RFC3339)
	}
	customerName := in.CustomerName
	if customerName == "" && in.CustomerID != "" {
		if customer, err := uc.customerRepo.GetByID(in.CustomerID); err == nil && customer != nil {
			customerName = customer.Name
		}
	}

	order := &entity.SalesOrder{
		Base: entity.Base{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrderDate:     orderDate,
		CustomerID:    in.CustomerID,
		CustomerName:  customerName,
		WarehouseID:   in.WarehouseID,
		Items:         items,
		TotalAmount:   decimal.Zero,
		PaymentStatus: paymentStatus,
		PaymentMethod: paymentMethod,
		Notes:         in.Notes,
		Status:        status,
	}
	order.CalculateTotal()

	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}

	// Descuento de stock por ítem. Los fallos no revierten la orden persistida.
	for _, it := range order.Items {
		_, _, err := uc.stock.AdjustStock(ctx, inventory.AdjustStockInput{
			ProductID:      it.ProductID,
			WarehouseID:    order.WarehouseID,
			QuantityChange: -it.Quantity,
			MovementType:   entity.MovementTypeSale,
			ReferenceID:    order.ID,
			ReferenceType:  entity.ReferenceTypeSalesOrder,
		})
		if err != nil {
			uc.log.Warn().
				Err(err).
				Str("order_id", order.ID).
				Str("product_id", it.ProductID).
				Int("quantity", it.Quantity).
				Msg("fallo al descontar stock tras crear la orden; requiere ajuste manual")
		}
	}

	return order, nil
}
