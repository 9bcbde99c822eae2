package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación en memoria de CustomerRepository.
// Replica la unicidad global de email y el filtro por propietario del
// adaptador de PostgreSQL.
type CustomerRepo struct {
	mu        sync.RWMutex
	customers map[string]*entity.Customer // por ID
}

// NewCustomerRepository construye el repositorio en memoria.
func NewCustomerRepository() *CustomerRepo {
	return &CustomerRepo{customers: make(map[string]*entity.Customer)}
}

// Create persiste un cliente. Devuelve ErrDuplicateEmail si el email ya existe
// (unicidad global, no por propietario).
func (r *CustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.customers {
		if c.Email == customer.Email {
			return domain.ErrDuplicateEmail
		}
	}
	cp := *customer
	r.customers[customer.ID] = &cp
	return nil
}

// GetByOwnerAndID devuelve (nil, nil) si el id no existe o pertenece a otro propietario.
func (r *CustomerRepo) GetByOwnerAndID(_ context.Context, ownerID, id string) (*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.customers[id]
	if !ok || c.CreatedBy != ownerID {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

// ListByOwner lista los clientes del propietario ordenados por fecha de creación.
func (r *CustomerRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Customer, error) {
	return r.SearchByOwner(ctx, ownerID, "")
}

// SearchByOwner busca por substring case-insensitive en name o email.
func (r *CustomerRepo) SearchByOwner(_ context.Context, ownerID, query string) ([]*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q := strings.ToLower(query)
	var list []*entity.Customer
	for _, c := range r.customers {
		if c.CreatedBy != ownerID {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(c.Name), q) &&
			!strings.Contains(strings.ToLower(c.Email), q) {
			continue
		}
		cp := *c
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return list, nil
}

// Update reemplaza el registro si existe para ese propietario.
func (r *CustomerRepo) Update(_ context.Context, customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.customers[customer.ID]
	if !ok || existing.CreatedBy != customer.CreatedBy {
		return domain.ErrNotFound
	}
	for _, c := range r.customers {
		if c.ID != customer.ID && c.Email == customer.Email {
			return domain.ErrDuplicateEmail
		}
	}
	cp := *customer
	r.customers[customer.ID] = &cp
	return nil
}

// DeleteByOwner elimina el registro; devuelve false si no existía para ese propietario.
func (r *CustomerRepo) DeleteByOwner(_ context.Context, ownerID, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[id]
	if !ok || c.CreatedBy != ownerID {
		return false, nil
	}
	delete(r.customers, id)
	return true, nil
}
