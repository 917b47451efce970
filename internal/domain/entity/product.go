package entity

import "github.com/shopspring/decimal"

// Product representa un producto o SKU del inventario (multi-bodega).
// StockByWarehouse mantiene la cantidad por bodega; ningún valor es negativo
// (los ajustes se recortan en cero, ver el caso de uso de inventario).
type Product struct {
	Base
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	SKU              string          `json:"sku"` // único entre productos activos
	Barcode          string          `json:"barcode"`
	CategoryID       string          `json:"category_id"` // referencia débil
	SupplierID       string          `json:"supplier_id"` // referencia débil
	Price            decimal.Decimal `json:"price"`
	CostPrice        decimal.Decimal `json:"cost_price"`
	Unit             string          `json:"unit"`
	ReorderPoint     int             `json:"reorder_point"`
	StockByWarehouse map[string]int  `json:"stock_by_warehouse"`
	IsActive         bool            `json:"is_active"`
}

// TotalStock suma el stock de todas las bodegas.
func (p *Product) TotalStock() int {
	total := 0
	for _, qty := range p.StockByWarehouse {
		total += qty
	}
	return total
}

// StockAt devuelve el stock de una bodega (0 si no hay entrada).
func (p *Product) StockAt(warehouseID string) int {
	return p.StockByWarehouse[warehouseID]
}

// AdjustStock aplica un delta al stock de una bodega recortando en cero:
// las cantidades nunca quedan negativas aunque el delta lo implique.
func (p *Product) AdjustStock(warehouseID string, delta int) int {
	if p.StockByWarehouse == nil {
		p.StockByWarehouse = make(map[string]int)
	}
	newQty := p.StockByWarehouse[warehouseID] + delta
	if newQty < 0 {
		newQty = 0
	}
	p.StockByWarehouse[warehouseID] = newQty
	return newQty
}
