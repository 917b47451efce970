package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/inventario-pos/internal/application/dto"
	"github.com/tu-usuario/inventario-pos/internal/domain"
	"github.com/tu-usuario/inventario-pos/internal/domain/entity"
	"github.com/tu-usuario/inventario-pos/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create crea un proveedor activo.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*entity.Supplier, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	supplier := &entity.Supplier{
		Base: entity.Base{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		PaymentTerms:  in.PaymentTerms,
		IsActive:      true,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// GetByID obtiene un proveedor por ID; nil si no existe.
func (uc *SupplierUseCase) GetByID(id string) (*entity.Supplier, error) {
	return uc.repo.GetByID(id)
}

// Update actualiza un proveedor; campos nil no se tocan.
func (uc *SupplierUseCase) Update(id string, in dto.UpdateSupplierRequest) (*entity.Supplier, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		supplier.Name = *in.Name
	}
	if in.ContactPerson != nil {
		supplier.ContactPerson = *in.ContactPerson
	}
	if in.Email != nil {
		supplier.Email = *in.Email
	}
	if in.Phone != nil {
		supplier.Phone = *in.Phone
	}
	if in.Address != nil {
		supplier.Address = *in.Address
	}
	if in.PaymentTerms != nil {
		supplier.PaymentTerms = *in.PaymentTerms
	}
	if in.IsActive != nil {
		supplier.IsActive = *in.IsActive
	}
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// List lista proveedores con paginación.
func (uc *SupplierUseCase) List(page dto.PageRequest) ([]*entity.Supplier, error) {
	page.DefaultPage()
	return uc.repo.List(page.Limit, page.Offset)
}

// Delete desactiva el proveedor (borrado suave).
func (uc *SupplierUseCase) Delete(id string) error {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	if !supplier.IsActive {
		return nil
	}
	supplier.IsActive = false
	return uc.repo.Update(supplier)
}
