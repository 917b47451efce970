package repository

import "github.com/tu-usuario/inventario-pos/internal/domain/entity"

// PurchaseOrderFilter filtros de igualdad exacta para listados de compras.
type PurchaseOrderFilter struct {
	SupplierID  string
	WarehouseID string
	Status      string
	Limit       int
	Offset      int
}

// PurchaseOrderRepository define el puerto de persistencia para PurchaseOrder (DIP).
type PurchaseOrderRepository interface {
	Create(order *entity.PurchaseOrder) error
	GetByID(id string) (*entity.PurchaseOrder, error)
	Update(order *entity.PurchaseOrder) error
	List(filter PurchaseOrderFilter) ([]*entity.PurchaseOrder, error)
}
