package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	SKU              string          `json:"sku"`
	Barcode          string          `json:"barcode"`
	CategoryID       string          `json:"category_id"`
	SupplierID       string          `json:"supplier_id"`
	Price            decimal.Decimal `json:"price"`
	CostPrice        decimal.Decimal `json:"cost_price"`
	Unit             string          `json:"unit"`
	ReorderPoint     int             `json:"reorder_point"`
	StockByWarehouse map[string]int  `json:"stock_by_warehouse"`
}

// UpdateProductRequest entrada para actualizar un producto; campos nil no se tocan.
type UpdateProductRequest struct {
	Name         *string          `json:"name"`
	Description  *string          `json:"description"`
	SKU          *string          `json:"sku"`
	Barcode      *string          `json:"barcode"`
	CategoryID   *string          `json:"category_id"`
	SupplierID   *string          `json:"supplier_id"`
	Price        *decimal.Decimal `json:"price"`
	CostPrice    *decimal.Decimal `json:"cost_price"`
	Unit         *string          `json:"unit"`
	ReorderPoint *int             `json:"reorder_point"`
	IsActive     *bool            `json:"is_active"`
}

// AdjustStockRequest entrada para el ajuste directo de stock de un producto.
type AdjustStockRequest struct {
	WarehouseID    string `json:"warehouse_id"`
	QuantityChange int    `json:"quantity_change"`
	MovementType   string `json:"movement_type"`
	ReferenceID    string `json:"reference_id"`
	ReferenceType  string `json:"reference_type"`
	Notes          string `json:"notes"`
}

// ProductListFilter filtros de listado/búsqueda de productos.
type ProductListFilter struct {
	Search      string `query:"search"`
	CategoryID  string `query:"category_id"`
	WarehouseID string `query:"warehouse_id"`
	PageRequest
}
