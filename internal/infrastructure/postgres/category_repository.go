package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/inventario-pos/internal/domain/entity"
	"github.com/tu-usuario/inventario-pos/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (id, revision, name, description, parent_category_id, is_active, created_at, updated_at)
		VALUES ($1, 1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Description, category.ParentCategoryID,
		category.IsActive, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	category.Revision = 1
	return nil
}

func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	query := `SELECT id, revision, name, description, parent_category_id, is_active, created_at, updated_at
		FROM categories WHERE id = $1`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Revision, &c.Name, &c.Description, &c.ParentCategoryID,
		&c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// Update escritura condicional por revisión (ver ProductRepo.Update).
func (r *CategoryRepo) Update(category *entity.Category) error {
	query := `
		UPDATE categories
		SET name = $3, description = $4, parent_category_id = $5, is_active = $6,
			revision = revision + 1, updated_at = now()
		WHERE id = $1 AND revision = $2
		RETURNING revision, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		category.ID, category.Revision, category.Name, category.Description,
		category.ParentCategoryID, category.IsActive,
	).Scan(&category.Revision, &category.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staleOrMissing(r.q, "categories", category.ID)
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) List(limit, offset int) ([]*entity.Category, error) {
	query := `SELECT id, revision, name, description, parent_category_id, is_active, created_at, updated_at
		FROM categories ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Revision, &c.Name, &c.Description,
			&c.ParentCategoryID, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
