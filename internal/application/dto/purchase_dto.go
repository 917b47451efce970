package dto

import "github.com/shopspring/decimal"

// PurchaseOrderItemRequest línea de una orden de compra entrante.
type PurchaseOrderItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	CostPrice decimal.Decimal `json:"cost_price"`
}

// CreatePurchaseOrderRequest entrada para crear una orden de compra.
type CreatePurchaseOrderRequest struct {
	OrderDate        string                     `json:"order_date"`
	SupplierID       string                     `json:"supplier_id"`
	WarehouseID      string                     `json:"warehouse_id"`
	Items            []PurchaseOrderItemRequest `json:"items"`
	ExpectedDelivery string                     `json:"expected_delivery"`
	Notes            string                     `json:"notes"`
}

// PurchaseOrderListFilter filtros de listado de órdenes de compra.
type PurchaseOrderListFilter struct {
	SupplierID  string `query:"supplier_id"`
	WarehouseID string `query:"warehouse_id"`
	Status      string `query:"status"`
	PageRequest
}
