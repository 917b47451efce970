package entity

import "github.com/shopspring/decimal"

// Estados de una orden de venta. Máquina de estados:
// draft -> completed -> cancelled; la cancelación es la única salida de
// completed y no hay transición posible desde cancelled.
const (
	OrderStatusDraft     = "draft"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Estados de pago de una orden de venta.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusPartial = "partial"
)

// SalesOrder orden de venta (transacción de cliente).
// OrderDate es un string ISO-8601: los rangos de fechas se comparan
// lexicográficamente, igual que en el almacenamiento.
type SalesOrder struct {
	Base
	OrderDate     string           `json:"order_date"`
	CustomerID    string           `json:"customer_id"`   // vacío para venta de mostrador
	CustomerName  string           `json:"customer_name"` // cliente de mostrador
	WarehouseID   string           `json:"warehouse_id"`
	Items         []SalesOrderItem `json:"items"`
	TotalAmount   decimal.Decimal  `json:"total_amount"`
	PaymentStatus string           `json:"payment_status"`
	PaymentMethod string           `json:"payment_method"`
	Notes         string           `json:"notes"`
	Status        string           `json:"status"`
}

// SalesOrderItem línea de la orden (embebida, no direccionable por sí sola).
// ProductName y SKU se copian del producto al momento de la venta y no cambian
// aunque el producto se edite después.
type SalesOrderItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	SKU         string          `json:"sku"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Discount    decimal.Decimal `json:"discount"`
	BatchNo     string          `json:"batch_no"`
	ExpiryDate  string          `json:"expiry_date"`
}

// LineTotal devuelve quantity * unit_price - discount.
func (i SalesOrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity))).Sub(i.Discount)
}

// CalculateTotal recalcula TotalAmount como la suma de los totales de línea.
func (o *SalesOrder) CalculateTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.LineTotal())
	}
	o.TotalAmount = total
	return total
}
