package sales

import (
	"context"

	"github.com/tu-usuario/inventario-pos/internal/application/inventory"
	"github.com/tu-usuario/inventario-pos/internal/domain"
	"github.com/tu-usuario/inventario-pos/internal/domain/entity"
)

// Cancel cancela una orden y repone el stock de cada ítem. La reposición es
// incondicional: repone lo vendido aunque el stock haya sido ajustado por otras
// vías entre la venta y la cancelación. Una orden cancelada no puede volver a
// cancelarse ni salir de ese estado.
func (uc *UseCase) Cancel(ctx context.Context, id string) (*entity.SalesOrder, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.Status == entity.OrderStatusCancelled {
		return nil, domain.ErrOrderCancelled
	}

	order.Status = entity.OrderStatusCancelled
	if err := uc.orderRepo.Update(order); err != nil {
		return nil, err
	}

	// Reposición por ítem. Los fallos no revierten la cancelación persistida.
	for _, it := range order.Items {
		_, _, err := uc.stock.AdjustStock(ctx, inventory.AdjustStockInput{
			ProductID:      it.ProductID,
			WarehouseID:    order.WarehouseID,
			QuantityChange: it.Quantity,
			MovementType:   entity.MovementTypeAdjustment,
			ReferenceID:    order.ID,
			ReferenceType:  entity.ReferenceTypeSalesCancel,
		})
		if err != nil {
			uc.log.Warn().
				Err(err).
				Str("order_id", order.ID).
				Str("product_id", it.ProductID).
				Int("quantity", it.Quantity).
				Msg("fallo al reponer stock tras cancelar la orden; requiere ajuste manual")
		}
	}

	return order, nil
}
