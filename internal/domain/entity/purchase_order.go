package entity

import "github.com/shopspring/decimal"

// Estados de una orden de compra.
const (
	PurchaseStatusPending   = "pending"
	PurchaseStatusOrdered   = "ordered"
	PurchaseStatusReceived  = "received"
	PurchaseStatusCancelled = "cancelled"
)

// PurchaseOrder orden de compra a proveedor (reabastecimiento).
// El stock solo entra a bodega cuando la orden se marca recibida.
type PurchaseOrder struct {
	Base
	OrderDate        string              `json:"order_date"`
	SupplierID       string              `json:"supplier_id"`
	SupplierName     string              `json:"supplier_name"`
	WarehouseID      string              `json:"warehouse_id"`
	Items            []PurchaseOrderItem `json:"items"`
	TotalCost        decimal.Decimal     `json:"total_cost"`
	ExpectedDelivery string              `json:"expected_delivery"`
	Notes            string              `json:"notes"`
	Status           string              `json:"status"`
}

// PurchaseOrderItem línea de la orden de compra (embebida).
type PurchaseOrderItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	SKU         string          `json:"sku"`
	Quantity    int             `json:"quantity"`
	CostPrice   decimal.Decimal `json:"cost_price"`
}

// CalculateTotal recalcula TotalCost como Σ quantity * cost_price.
func (o *PurchaseOrder) CalculateTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.CostPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	o.TotalCost = total
	return total
}
