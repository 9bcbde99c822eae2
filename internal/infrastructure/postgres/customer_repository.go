package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository sobre PostgreSQL.
// Todas las consultas van conjugadas con created_by = propietario.
type CustomerRepo struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository construye el adaptador de persistencia para clientes.
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepo {
	return &CustomerRepo{pool: pool}
}

const customerColumns = `id, name, email, phone, address, notes, created_by, created_at, updated_at`

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.Notes,
		&c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo cliente. Devuelve ErrDuplicateEmail si el email
// ya existe (unicidad global, no por propietario).
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		customer.ID, customer.Name, customer.Email, customer.Phone, customer.Address,
		customer.Notes, customer.CreatedBy, customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByOwnerAndID obtiene un cliente por id acotado al propietario.
// Devuelve (nil, nil) tanto si el id no existe como si pertenece a otro usuario.
func (r *CustomerRepo) GetByOwnerAndID(ctx context.Context, ownerID, id string) (*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers WHERE created_by = $1 AND id = $2`
	c, err := scanCustomer(r.pool.QueryRow(ctx, query, ownerID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// ListByOwner lista todos los clientes del propietario.
func (r *CustomerRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers WHERE created_by = $1 ORDER BY created_at`
	return r.queryList(ctx, query, ownerID)
}

// SearchByOwner busca por substring case-insensitive en name o email, acotado al propietario.
func (r *CustomerRepo) SearchByOwner(ctx context.Context, ownerID, query string) ([]*entity.Customer, error) {
	sql := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE created_by = $1 AND (name ILIKE '%' || $2 || '%' OR email ILIKE '%' || $2 || '%')
		ORDER BY created_at`
	return r.queryList(ctx, sql, ownerID, query)
}

func (r *CustomerRepo) queryList(ctx context.Context, sql string, args ...any) ([]*entity.Customer, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update actualiza un cliente. El WHERE incluye created_by como refuerzo del
// filtro de propiedad; el caso de uso ya cargó el registro acotado.
func (r *CustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	query := `
		UPDATE customers SET name = $3, email = $4, phone = $5, address = $6, notes = $7, updated_at = $8
		WHERE created_by = $1 AND id = $2`
	tag, err := r.pool.Exec(ctx, query,
		customer.CreatedBy, customer.ID, customer.Name, customer.Email, customer.Phone,
		customer.Address, customer.Notes, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByOwner elimina un cliente por id acotado al propietario.
// Devuelve false si no había registro que borrar.
func (r *CustomerRepo) DeleteByOwner(ctx context.Context, ownerID, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE created_by = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return false, fmt.Errorf("delete customer: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
