package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/inventario-pos/internal/application/dto"
	"github.com/tu-usuario/inventario-pos/internal/domain"
	"github.com/tu-usuario/inventario-pos/internal/domain/entity"
	"github.com/tu-usuario/inventario-pos/internal/domain/repository"
)

// WarehouseUseCase casos de uso CRUD para bodegas.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// Create crea una bodega activa.
func (uc *WarehouseUseCase) Create(in dto.CreateWarehouseRequest) (*entity.Warehouse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	warehouse := &entity.Warehouse{
		Base: entity.Base{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        in.Name,
		Location:    in.Location,
		Description: in.Description,
		IsActive:    true,
	}
	if err := uc.repo.Create(warehouse); err != nil {
		return nil, err
	}
	return warehouse, nil
}

// GetByID obtiene una bodega por ID; nil si no existe.
func (uc *WarehouseUseCase) GetByID(id string) (*entity.Warehouse, error) {
	return uc.repo.GetByID(id)
}

// Update actualiza una bodega; campos nil no se tocan.
func (uc *WarehouseUseCase) Update(id string, in dto.UpdateWarehouseRequest) (*entity.Warehouse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		warehouse.Name = *in.Name
	}
	if in.Location != nil {
		warehouse.Location = *in.Location
	}
	if in.Description != nil {
		warehouse.Description = *in.Description
	}
	if in.IsActive != nil {
		warehouse.IsActive = *in.IsActive
	}
	if err := uc.repo.Update(warehouse); err != nil {
		return nil, err
	}
	return warehouse, nil
}

// List lista bodegas con paginación.
func (uc *WarehouseUseCase) List(page dto.PageRequest) ([]*entity.Warehouse, error) {
	page.DefaultPage()
	return uc.repo.List(page.Limit, page.Offset)
}

// Delete desactiva la bodega (borrado suave). El stock referido a la bodega se
// conserva en los productos.
func (uc *WarehouseUseCase) Delete(id string) error {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return domain.ErrNotFound
	}
	if !warehouse.IsActive {
		return nil
	}
	warehouse.IsActive = false
	return uc.repo.Update(warehouse)
}
