// Package reports agrega órdenes persistidas en métricas de ventas.
package reports

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-pos/internal/application/dto"
	"github.com/tu-usuario/inventario-pos/internal/domain"
	"github.com/tu-usuario/inventario-pos/internal/domain/entity"
	"github.com/tu-usuario/inventario-pos/internal/domain/repository"
)

// UseCase reportes de ventas.
type UseCase struct {
	orderRepo repository.SalesOrderRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(orderRepo repository.SalesOrderRepository) *UseCase {
	return &UseCase{orderRepo: orderRepo}
}

// SalesSummary resume las órdenes del rango [start, end] (inclusive ambos
// extremos, comparación lexicográfica sobre order_date ISO-8601), opcionalmente
// filtradas por bodega. El ingreso total y el ranking de productos excluyen
// las órdenes canceladas; los conteos por estado las incluyen.
func (uc *UseCase) SalesSummary(start, end, warehouseID string) (*dto.SalesSummary, error) {
	if start == "" || end == "" {
		return nil, domain.ErrInvalidInput
	}
	orders, err := uc.orderRepo.ListByDateRange(start, end)
	if err != nil {
		return nil, err
	}

	summary := &dto.SalesSummary{
		StartDate:    start,
		EndDate:      end,
		WarehouseID:  warehouseID,
		TotalRevenue: decimal.Zero,
		TopProducts:  []dto.TopProduct{},
	}

	// Acumulación por producto en orden de primera aparición; el sort estable
	// de abajo conserva ese orden entre empates de cantidad.
	byProduct := make(map[string]*dto.TopProduct)
	firstSeen := make([]string, 0)

	for _, order := range orders {
		if warehouseID != "" && order.WarehouseID != warehouseID {
			continue
		}
		summary.TotalOrders++
		switch order.Status {
		case entity.OrderStatusCompleted:
			summary.CompletedOrders++
		case entity.OrderStatusCancelled:
			summary.CancelledOrders++
		}
		// El desglose por estado de pago cuenta todas las órdenes del rango,
		// canceladas incluidas; solo el ingreso y el top de productos las excluyen.
		switch order.PaymentStatus {
		case entity.PaymentStatusPaid:
			summary.PaymentBreakdown.Paid++
		case entity.PaymentStatusPending:
			summary.PaymentBreakdown.Pending++
		}
		if order.Status == entity.OrderStatusCancelled {
			continue
		}

		summary.TotalRevenue = summary.TotalRevenue.Add(order.TotalAmount)

		for _, it := range order.Items {
			tp, ok := byProduct[it.ProductID]
			if !ok {
				tp = &dto.TopProduct{
					ProductID:    it.ProductID,
					ProductName:  it.ProductName,
					SKU:          it.SKU,
					TotalRevenue: decimal.Zero,
				}
				byProduct[it.ProductID] = tp
				firstSeen = append(firstSeen, it.ProductID)
			}
			tp.TotalQuantity += it.Quantity
			tp.TotalRevenue = tp.TotalRevenue.Add(it.LineTotal())
		}
	}

	top := make([]dto.TopProduct, 0, len(firstSeen))
	for _, id := range firstSeen {
		top = append(top, *byProduct[id])
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].TotalQuantity > top[j].TotalQuantity
	})
	if len(top) > 10 {
		top = top[:10]
	}
	summary.TopProducts = top

	return summary, nil
}
