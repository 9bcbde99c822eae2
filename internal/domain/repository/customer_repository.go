package repository

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// Toda consulta va acotada al propietario: un id que existe pero pertenece
// a otro usuario se comporta igual que un id inexistente.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByOwnerAndID(ctx context.Context, ownerID, id string) (*entity.Customer, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Customer, error)
	// SearchByOwner busca por substring case-insensitive en name o email.
	// Query vacío equivale a ListByOwner.
	SearchByOwner(ctx context.Context, ownerID, query string) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	// DeleteByOwner devuelve false si no existía un cliente con ese id para ese propietario.
	DeleteByOwner(ctx context.Context, ownerID, id string) (bool, error)
}
