package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/inventario-pos/internal/application/dto"
	"github.com/tu-usuario/inventario-pos/internal/domain"
	"github.com/tu-usuario/inventario-pos/internal/domain/entity"
	"github.com/tu-usuario/inventario-pos/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock se maneja vía el
// libro mayor de inventario, no por esta vía.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto activo. Nombre, SKU y un precio positivo son
// obligatorios; el SKU debe ser único entre productos activos.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*entity.Product, error) {
	if in.Name == "" || in.SKU == "" || !in.Price.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if in.CostPrice.IsNegative() || in.ReorderPoint < 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, qty := range in.StockByWarehouse {
		if qty < 0 {
			return nil, domain.ErrInvalidInput
		}
	}
	existing, err := uc.repo.GetActiveBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now().UTC()
	product := &entity.Product{
		Base: entity.Base{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:             in.Name,
		Description:      in.Description,
		SKU:              in.SKU,
		Barcode:          in.Barcode,
		CategoryID:       in.CategoryID,
		SupplierID:       in.SupplierID,
		Price:            in.Price,
		CostPrice:        in.CostPrice,
		Unit:             in.Unit,
		ReorderPoint:     in.ReorderPoint,
		StockByWarehouse: in.StockByWarehouse,
		IsActive:         true,
	}
	if product.StockByWarehouse == nil {
		product.StockByWarehouse = map[string]int{}
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*entity.Product, error) {
	return uc.repo.GetByID(id)
}

// Update actualiza un producto; campos nil del request no se tocan.
// No permite modificar stock (se maneja vía movimientos).
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*entity.Product, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.SKU != nil {
		if *in.SKU == "" {
			return nil, domain.ErrInvalidInput
		}
		product.SKU = *in.SKU
	}
	if in.Barcode != nil {
		product.Barcode = *in.Barcode
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.SupplierID != nil {
		product.SupplierID = *in.SupplierID
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.CostPrice != nil {
		if in.CostPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.CostPrice = *in.CostPrice
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.ReorderPoint != nil {
		if *in.ReorderPoint < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.ReorderPoint = *in.ReorderPoint
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// List lista productos con filtro opcional por categoría o búsqueda por texto.
// Con warehouse_id el resultado se reduce a productos con stock en esa bodega;
// el filtro es en memoria sobre la página ya obtenida.
func (uc *ProductUseCase) List(filter dto.ProductListFilter) ([]*entity.Product, error) {
	filter.DefaultPage()
	var (
		products []*entity.Product
		err      error
	)
	if filter.Search != "" {
		products, err = uc.repo.Search(filter.Search, filter.Limit)
	} else {
		products, err = uc.repo.List(repository.ProductFilter{
			CategoryID: filter.CategoryID,
			Limit:      filter.Limit,
			Offset:     filter.Offset,
		})
	}
	if err != nil {
		return nil, err
	}
	if filter.WarehouseID == "" {
		return products, nil
	}
	filtered := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if p.StockAt(filter.WarehouseID) > 0 {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// Similar devuelve hasta limit productos activos de la misma categoría,
// excluyendo el propio producto.
func (uc *ProductUseCase) Similar(id string, limit int) ([]*entity.Product, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if limit <= 0 {
		limit = 10
	}
	if product.CategoryID == "" {
		return []*entity.Product{}, nil
	}
	// El filtro de activos va en la consulta; el +1 solo absorbe al propio
	// producto si aparece en la página.
	candidates, err := uc.repo.List(repository.ProductFilter{
		CategoryID: product.CategoryID,
		OnlyActive: true,
		Limit:      limit + 1,
		Offset:     0,
	})
	if err != nil {
		return nil, err
	}
	similar := make([]*entity.Product, 0, limit)
	for _, c := range candidates {
		if c.ID == id {
			continue
		}
		similar = append(similar, c)
		if len(similar) == limit {
			break
		}
	}
	return similar, nil
}

// Delete desactiva el producto (borrado suave): conserva historial y libera el SKU.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if !product.IsActive {
		return nil
	}
	product.IsActive = false
	return uc.repo.Update(product)
}
