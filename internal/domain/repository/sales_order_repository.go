package repository

import "github.com/tu-usuario/inventario-pos/internal/domain/entity"

// SalesOrderFilter filtros de igualdad exacta para listados de órdenes.
type SalesOrderFilter struct {
	CustomerID  string
	WarehouseID string
	Status      string
	Limit       int
	Offset      int
}

// SalesOrderRepository define el puerto de persistencia para SalesOrder (DIP).
// ListByDateRange compara order_date (texto ISO-8601) lexicográficamente,
// inclusivo en ambos extremos, y devuelve las órdenes descendentes por fecha.
type SalesOrderRepository interface {
	Create(order *entity.SalesOrder) error
	GetByID(id string) (*entity.SalesOrder, error)
	Update(order *entity.SalesOrder) error
	List(filter SalesOrderFilter) ([]*entity.SalesOrder, error)
	ListByDateRange(start, end string) ([]*entity.SalesOrder, error)
}
