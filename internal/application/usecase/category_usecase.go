package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/inventario-pos/internal/application/dto"
	"github.com/tu-usuario/inventario-pos/internal/domain"
	"github.com/tu-usuario/inventario-pos/internal/domain/entity"
	"github.com/tu-usuario/inventario-pos/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría activa.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*entity.Category, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	category := &entity.Category{
		Base: entity.Base{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:             in.Name,
		Description:      in.Description,
		ParentCategoryID: in.ParentCategoryID,
		IsActive:         true,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// GetByID obtiene una categoría por ID; nil si no existe.
func (uc *CategoryUseCase) GetByID(id string) (*entity.Category, error) {
	return uc.repo.GetByID(id)
}

// Update actualiza una categoría; campos nil no se tocan.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*entity.Category, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.ParentCategoryID != nil {
		category.ParentCategoryID = *in.ParentCategoryID
	}
	if in.IsActive != nil {
		category.IsActive = *in.IsActive
	}
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// List lista categorías con paginación.
func (uc *CategoryUseCase) List(page dto.PageRequest) ([]*entity.Category, error) {
	page.DefaultPage()
	return uc.repo.List(page.Limit, page.Offset)
}

// Delete desactiva la categoría (borrado suave).
func (uc *CategoryUseCase) Delete(id string) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	if !category.IsActive {
		return nil
	}
	category.IsActive = false
	return uc.repo.Update(category)
}
