package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/inventario-pos/internal/application/dto"
	"github.com/tu-usuario/inventario-pos/internal/domain"
	"github.com/tu-usuario/inventario-pos/internal/domain/entity"
	"github.com/tu-usuario/inventario-pos/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes. El email, cuando viene, es
// único entre clientes activos.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un cliente activo con cero puntos de lealtad.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*entity.Customer, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Email != "" {
		existing, err := uc.repo.GetActiveByEmail(in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	now := time.Now().UTC()
	customer := &entity.Customer{
		Base: entity.Base{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		LoyaltyPoints: 0,
		IsActive:      true,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetByID obtiene un cliente por ID; nil si no existe.
func (uc *CustomerUseCase) GetByID(id string) (*entity.Customer, error) {
	return uc.repo.GetByID(id)
}

// Update actualiza un cliente; campos nil no se tocan.
func (uc *CustomerUseCase) Update(id string, in dto.UpdateCustomerRequest) (*entity.Customer, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		customer.Name = *in.Name
	}
	if in.Email != nil && *in.Email != customer.Email {
		if *in.Email != "" {
			existing, err := uc.repo.GetActiveByEmail(*in.Email)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != id {
				return nil, domain.ErrDuplicate
			}
		}
		customer.Email = *in.Email
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	if in.LoyaltyPoints != nil {
		if *in.LoyaltyPoints < 0 {
			return nil, domain.ErrInvalidInput
		}
		customer.LoyaltyPoints = *in.LoyaltyPoints
	}
	if in.IsActive != nil {
		customer.IsActive = *in.IsActive
	}
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// List lista clientes con paginación; con search busca por nombre, email o teléfono.
func (uc *CustomerUseCase) List(search string, page dto.PageRequest) ([]*entity.Customer, error) {
	page.DefaultPage()
	if search != "" {
		return uc.repo.Search(search, page.Limit)
	}
	return uc.repo.List(page.Limit, page.Offset)
}

// Delete desactiva el cliente (borrado suave): libera su email.
func (uc *CustomerUseCase) Delete(id string) error {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	if !customer.IsActive {
		return nil
	}
	customer.IsActive = false
	return uc.repo.Update(customer)
}
