package usecase_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/inventario-pos/internal/application/dto"
	"github.com/tu-usuario/inventario-pos/internal/application/usecase"
	"github.com/tu-usuario/inventario-pos/internal/domain"
	"github.com/tu-usuario/inventario-pos/internal/domain/entity"
	"github.com/tu-usuario/inventario-pos/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
	order    []string // orden de inserción para List
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	f.products[p.ID] = &cp
	f.order = append(f.order, p.ID)
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) GetActiveBySKU(sku string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.SKU == sku && p.IsActive {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	if _, ok := f.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) UpdateStock(p *entity.Product) error { return f.Update(p) }

func (f *fakeProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, id := range f.order {
		p := f.products[id]
		if filter.CategoryID != "" && p.CategoryID != filter.CategoryID {
			continue
		}
		if filter.OnlyActive && !p.IsActive {
			continue
		}
		out = append(out, p)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (f *fakeProductRepo) ListActive() ([]*entity.Product, error) { return nil, nil }

func (f *fakeProductRepo) Search(string, int) ([]*entity.Product, error) { return nil, nil }

func (f *fakeProductRepo) Delete(id string) error {
	delete(f.products, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_Exitoso(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	p, err := uc.Create(dto.CreateProductRequest{
		Name:  "Café molido 500g",
		SKU:   "CAF-500",
		Price: decimal.NewFromInt(25),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.True(t, p.IsActive, "un producto nuevo nace activo")
	assert.NotNil(t, p.StockByWarehouse, "el mapa de stock nunca es nil")
	assert.Empty(t, p.StockByWarehouse)
}

func TestProductCreate_SKUDuplicado(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Create(dto.CreateProductRequest{Name: "A", SKU: "DUP-1", Price: decimal.NewFromInt(10)})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateProductRequest{Name: "B", SKU: "DUP-1", Price: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "el SKU es único entre activos")
}

func TestProductCreate_SKULiberadoPorBorradoSuave(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	a, err := uc.Create(dto.CreateProductRequest{Name: "A", SKU: "LIB-1", Price: decimal.NewFromInt(10)})
	require.NoError(t, err)
	require.NoError(t, uc.Delete(a.ID))

	// El borrado suave libera el SKU para un producto nuevo.
	_, err = uc.Create(dto.CreateProductRequest{Name: "B", SKU: "LIB-1", Price: decimal.NewFromInt(10)})
	assert.NoError(t, err)
}

func TestProductCreate_EntradaInvalida(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(dto.CreateProductRequest{SKU: "X", Price: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre obligatorio")

	_, err = uc.Create(dto.CreateProductRequest{Name: "X", Price: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "SKU obligatorio")

	_, err = uc.Create(dto.CreateProductRequest{
		Name: "X", SKU: "X", Price: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo")

	_, err = uc.Create(dto.CreateProductRequest{
		Name: "X", SKU: "X", Price: decimal.NewFromInt(10), StockByWarehouse: map[string]int{"w1": -5},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "stock inicial negativo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update y Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUpdate_CamposParciales(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	p, err := uc.Create(dto.CreateProductRequest{
		Name: "Original", SKU: "UPD-1", Price: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	nuevoNombre := "Renombrado"
	updated, err := uc.Update(p.ID, dto.UpdateProductRequest{Name: &nuevoNombre})
	require.NoError(t, err)
	assert.Equal(t, "Renombrado", updated.Name)
	assert.Equal(t, "UPD-1", updated.SKU, "los campos no enviados se conservan")
	assert.True(t, decimal.NewFromInt(10).Equal(updated.Price))

	vacio := ""
	_, err = uc.Update(p.ID, dto.UpdateProductRequest{Name: &vacio})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el nombre no puede vaciarse")
}

func TestProductUpdate_Inexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	nombre := "X"
	_, err := uc.Update("no-existe", dto.UpdateProductRequest{Name: &nombre})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete_EsSuaveEIdempotente(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	p, err := uc.Create(dto.CreateProductRequest{Name: "A", SKU: "DEL-1", Price: decimal.NewFromInt(10)})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(p.ID))
	stored, _ := repo.GetByID(p.ID)
	require.NotNil(t, stored, "el registro no desaparece")
	assert.False(t, stored.IsActive)

	assert.NoError(t, uc.Delete(p.ID), "repetir el borrado no es un error")
	assert.ErrorIs(t, uc.Delete("no-existe"), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Similar
// ──────────────────────────────────────────────────────────────────────────────

func TestProductSimilar_ExcluyeAlPropioYInactivos(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	base, err := uc.Create(dto.CreateProductRequest{Name: "Base", SKU: "SIM-0", CategoryID: "cat", Price: decimal.NewFromInt(10)})
	require.NoError(t, err)
	otro, err := uc.Create(dto.CreateProductRequest{Name: "Otro", SKU: "SIM-1", CategoryID: "cat", Price: decimal.NewFromInt(10)})
	require.NoError(t, err)
	inactivo, err := uc.Create(dto.CreateProductRequest{Name: "Inactivo", SKU: "SIM-2", CategoryID: "cat", Price: decimal.NewFromInt(10)})
	require.NoError(t, err)
	require.NoError(t, uc.Delete(inactivo.ID))
	_, err = uc.Create(dto.CreateProductRequest{Name: "Ajeno", SKU: "SIM-3", CategoryID: "otra", Price: decimal.NewFromInt(10)})
	require.NoError(t, err)

	out, err := uc.Similar(base.ID, 10)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, otro.ID, out[0].ID)
}

func TestProductSimilar_LosInactivosNoConsumenElLimite(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	base, err := uc.Create(dto.CreateProductRequest{Name: "Base", SKU: "SIM-B", CategoryID: "cat", Price: decimal.NewFromInt(10)})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		inactivo, err := uc.Create(dto.CreateProductRequest{
			Name: "Inactivo", SKU: fmt.Sprintf("SIM-I%d", i), CategoryID: "cat", Price: decimal.NewFromInt(10),
		})
		require.NoError(t, err)
		require.NoError(t, uc.Delete(inactivo.ID))
	}
	activo, err := uc.Create(dto.CreateProductRequest{Name: "Activo", SKU: "SIM-A", CategoryID: "cat", Price: decimal.NewFromInt(10)})
	require.NoError(t, err)

	// Con límite 2 el activo aparece aunque lo precedan varios inactivos.
	out, err := uc.Similar(base.ID, 2)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, activo.ID, out[0].ID)
}

func TestProductSimilar_SinCategoria(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	p, err := uc.Create(dto.CreateProductRequest{Name: "Suelto", SKU: "SIM-9", Price: decimal.NewFromInt(10)})
	require.NoError(t, err)

	out, err := uc.Similar(p.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, out, "sin categoría no hay similares")

	_, err = uc.Similar("no-existe", 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
