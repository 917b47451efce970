package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/inventario-pos/internal/domain"
	"github.com/tu-usuario/inventario-pos/internal/domain/entity"
	"github.com/tu-usuario/inventario-pos/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, revision, name, email, phone, address, loyalty_points, is_active, created_at, updated_at`

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, revision, name, email, phone, address, loyalty_points, is_active, created_at, updated_at)
		VALUES ($1, 1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Email, customer.Phone, customer.Address,
		customer.LoyaltyPoints, customer.IsActive, customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	customer.Revision = 1
	return nil
}

func (r *CustomerRepo) scanRow(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID, &c.Revision, &c.Name, &c.Email, &c.Phone, &c.Address,
		&c.LoyaltyPoints, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan customer: %w", err)
	}
	return &c, nil
}

func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	return r.scanRow(r.q.QueryRow(context.Background(), query, id))
}

// GetActiveByEmail respalda la unicidad de email entre clientes activos.
func (r *CustomerRepo) GetActiveByEmail(email string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE email = $1 AND is_active`
	return r.scanRow(r.q.QueryRow(context.Background(), query, email))
}

// Update escritura condicional por revisión.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $3, email = $4, phone = $5, address = $6, loyalty_points = $7,
			is_active = $8, revision = revision + 1, updated_at = now()
		WHERE id = $1 AND revision = $2
		RETURNING revision, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		customer.ID, customer.Revision, customer.Name, customer.Email, customer.Phone,
		customer.Address, customer.LoyaltyPoints, customer.IsActive,
	).Scan(&customer.Revision, &customer.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staleOrMissing(r.q, "customers", customer.ID)
		}
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

func (r *CustomerRepo) scanRows(rows pgx.Rows) ([]*entity.Customer, error) {
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Revision, &c.Name, &c.Email, &c.Phone,
			&c.Address, &c.LoyaltyPoints, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *CustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return r.scanRows(rows)
}

// Search subcadena sobre nombre, email y teléfono, insensible a mayúsculas.
func (r *CustomerRepo) Search(text string, limit int) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers
		WHERE (name || ' ' || email || ' ' || phone) ILIKE $1
		LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, "%"+text+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	return r.scanRows(rows)
}
