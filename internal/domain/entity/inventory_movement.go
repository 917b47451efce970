package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeSale       = "SALE"
	MovementTypePurchase   = "PURCHASE"
	MovementTypeAdjustment = "ADJUSTMENT"
	MovementTypeTransfer   = "TRANSFER"
)

// Tipos de referencia usados al enlazar movimientos con su transacción origen.
const (
	ReferenceTypeSalesOrder    = "sales_order"
	ReferenceTypeSalesCancel   = "sales_order_cancellation"
	ReferenceTypePurchaseOrder = "purchase_order"
)

// InventoryMovement registro de auditoría inmutable de un cambio de stock.
// QuantityChange guarda el delta *solicitado* (positivo entrada, negativo
// salida), no el resultado recortado en cero. Nunca se actualiza ni se borra.
type InventoryMovement struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"product_id"`
	WarehouseID    string    `json:"warehouse_id"`
	QuantityChange int       `json:"quantity_change"`
	MovementType   string    `json:"movement_type"`
	ReferenceID    string    `json:"reference_id"`
	ReferenceType  string    `json:"reference_type"`
	Notes          string    `json:"notes"`
	Timestamp      time.Time `json:"timestamp"`
	CreatedAt      time.Time `json:"created_at"`
}
