package dto

import "github.com/shopspring/decimal"

// SalesOrderItemRequest línea de una orden de venta entrante.
// UnitPrice es puntero para distinguir "no enviado" (rechazado) de un precio
// cero explícito (válido, por ejemplo un obsequio).
type SalesOrderItemRequest struct {
	ProductID  string           `json:"product_id"`
	Quantity   int              `json:"quantity"`
	UnitPrice  *decimal.Decimal `json:"unit_price"`
	Discount   decimal.Decimal  `json:"discount"`
	BatchNo    string           `json:"batch_no"`
	ExpiryDate string           `json:"expiry_date"`
}

// CreateSalesOrderRequest entrada para crear una orden de venta.
type CreateSalesOrderRequest struct {
	OrderDate     string                  `json:"order_date"`
	CustomerID    string                  `json:"customer_id"`
	CustomerName  string                  `json:"customer_name"`
	WarehouseID   string                  `json:"warehouse_id"`
	Items         []SalesOrderItemRequest `json:"items"`
	PaymentStatus string                  `json:"payment_status"`
	PaymentMethod string                  `json:"payment_method"`
	Notes         string                  `json:"notes"`
	Status        string                  `json:"status"`
}

// UpdateSalesOrderRequest actualización de una orden: solo campos de pago,
// cliente y notas. El estado y los ítems se manejan vía el flujo de trabajo.
type UpdateSalesOrderRequest struct {
	CustomerID    *string `json:"customer_id"`
	CustomerName  *string `json:"customer_name"`
	PaymentStatus *string `json:"payment_status"`
	PaymentMethod *string `json:"payment_method"`
	Notes         *string `json:"notes"`
}

// SalesOrderListFilter filtros de listado de órdenes de venta.
type SalesOrderListFilter struct {
	CustomerID  string `query:"customer_id"`
	WarehouseID string `query:"warehouse_id"`
	Status      string `query:"status"`
	PageRequest
}

// TopProduct fila del ranking de productos más vendidos del resumen.
type TopProduct struct {
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	SKU           string          `json:"sku"`
	TotalQuantity int             `json:"total_quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

// PaymentBreakdown conteo de órdenes por estado de pago.
type PaymentBreakdown struct {
	Paid    int `json:"paid"`
	Pending int `json:"pending"`
}

// SalesSummary resumen de ventas para un rango de fechas.
type SalesSummary struct {
	StartDate        string           `json:"start_date"`
	EndDate          string           `json:"end_date"`
	WarehouseID      string           `json:"warehouse_id,omitempty"`
	TotalOrders      int              `json:"total_orders"`
	CompletedOrders  int              `json:"completed_orders"`
	CancelledOrders  int              `json:"cancelled_orders"`
	TotalRevenue     decimal.Decimal  `json:"total_revenue"`
	PaymentBreakdown PaymentBreakdown `json:"payment_breakdown"`
	TopProducts      []TopProduct     `json:"top_products"`
}
