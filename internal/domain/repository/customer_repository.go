package repository

import "github.com/tu-usuario/inventario-pos/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer (DIP).
// GetActiveByEmail respalda la unicidad de email entre clientes activos.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetActiveByEmail(email string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	List(limit, offset int) ([]*entity.Customer, error)
	Search(text string, limit int) ([]*entity.Customer, error)
}
