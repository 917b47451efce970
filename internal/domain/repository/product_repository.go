package repository

import "github.com/tu-usuario/inventario-pos/internal/domain/entity"

// ProductFilter filtros de igualdad exacta para listados de productos.
type ProductFilter struct {
	CategoryID string
	OnlyActive bool
	Limit      int
	Offset     int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Update y UpdateStock son escrituras condicionales: comparan la revisión que
// trae la entidad con la almacenada y fallan con domain.ErrConflict si otra
// escritura ganó (concurrencia optimista, sin bloqueo de filas).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetActiveBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(product *entity.Product) error
	List(filter ProductFilter) ([]*entity.Product, error)
	ListActive() ([]*entity.Product, error)
	Search(text string, limit int) ([]*entity.Product, error)
	Delete(id string) error
}
