package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/inventario-pos/internal/domain"
	"github.com/tu-usuario/inventario-pos/internal/domain/entity"
	"github.com/tu-usuario/inventario-pos/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, revision, name, description, sku, barcode, category_id, supplier_id,
	price, cost_price, unit, reorder_point, stock_by_warehouse, is_active, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto con revision 1.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, revision, name, description, sku, barcode, category_id, supplier_id,
			price, cost_price, unit, reorder_point, stock_by_warehouse, is_active, created_at, updated_at)
		VALUES ($1, 1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.SKU, product.Barcode,
		product.CategoryID, product.SupplierID, product.Price, product.CostPrice,
		product.Unit, product.ReorderPoint, product.StockByWarehouse, product.IsActive,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	product.Revision = 1
	return nil
}

func (r *ProductRepo) scanRow(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Revision, &p.Name, &p.Description, &p.SKU, &p.Barcode,
		&p.CategoryID, &p.SupplierID, &p.Price, &p.CostPrice, &p.Unit,
		&p.ReorderPoint, &p.StockByWarehouse, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}
	return &p, nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanRow(r.q.QueryRow(context.Background(), query, id))
}

// GetActiveBySKU obtiene el producto activo con ese SKU (para unicidad).
func (r *ProductRepo) GetActiveBySKU(sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1 AND is_active`
	return r.scanRow(r.q.QueryRow(context.Background(), query, sku))
}

// Update escritura condicional: compara la revisión leída por el caller y
// falla con domain.ErrConflict si el almacenamiento tiene otra más nueva.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $3, description = $4, sku = $5, barcode = $6, category_id = $7, supplier_id = $8,
			price = $9, cost_price = $10, unit = $11, reorder_point = $12, stock_by_warehouse = $13,
			is_active = $14, revision = revision + 1, updated_at = now()
		WHERE id = $1 AND revision = $2
		RETURNING revision, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		product.ID, product.Revision, product.Name, product.Description, product.SKU,
		product.Barcode, product.CategoryID, product.SupplierID, product.Price,
		product.CostPrice, product.Unit, product.ReorderPoint, product.StockByWarehouse,
		product.IsActive,
	).Scan(&product.Revision, &product.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staleOrMissing(r.q, "products", product.ID)
		}
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock escritura condicional solo del mapa de stock (usada por el ledger).
func (r *ProductRepo) UpdateStock(product *entity.Product) error {
	query := `
		UPDATE products
		SET stock_by_warehouse = $3, revision = revision + 1, updated_at = now()
		WHERE id = $1 AND revision = $2
		RETURNING revision, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		product.ID, product.Revision, product.StockByWarehouse,
	).Scan(&product.Revision, &product.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staleOrMissing(r.q, "products", product.ID)
		}
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanRows(rows pgx.Rows) ([]*entity.Product, error) {
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.Revision, &p.Name, &p.Description, &p.SKU, &p.Barcode,
			&p.CategoryID, &p.SupplierID, &p.Price, &p.CostPrice, &p.Unit,
			&p.ReorderPoint, &p.StockByWarehouse, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// List lista productos con paginación y filtro opcional por categoría.
func (r *ProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	conds := []string{}
	args := []any{}
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		conds = append(conds, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if filter.OnlyActive {
		conds = append(conds, "is_active")
	}
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return r.scanRows(rows)
}

// ListActive devuelve todos los productos activos (recorrido O(n) para
// detección de stock bajo; el contrato no promete índices secundarios).
func (r *ProductRepo) ListActive() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE is_active ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list active products: %w", err)
	}
	return r.scanRows(rows)
}

// likeEscaper neutraliza los metacaracteres de LIKE para que el texto buscado
// se compare como subcadena literal.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search subcadena literal sin ranking sobre nombre, SKU y descripción,
// insensible a mayúsculas; primeros limit resultados en orden de almacenamiento.
func (r *ProductRepo) Search(text string, limit int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products
		WHERE (name || ' ' || sku || ' ' || description) ILIKE $1
		LIMIT $2`
	pattern := "%" + likeEscaper.Replace(text) + "%"
	rows, err := r.q.Query(context.Background(), query, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return r.scanRows(rows)
}

// Delete borrado físico. Las rutas HTTP usan soft delete (is_active=false);
// esto queda para mantenimiento.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
