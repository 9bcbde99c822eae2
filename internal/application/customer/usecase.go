package customer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD de clientes, siempre acotados al
// propietario autenticado. Un id de otro propietario produce ErrNotFound,
// nunca un error que revele que el registro existe.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un cliente para ownerID. El propietario se fija aquí: cualquier
// valor que llegara en el body se ignora.
func (uc *CustomerUseCase) Create(ctx context.Context, ownerID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.Email == "" || in.Phone == "" || in.Address == "" {
		return nil, fmt.Errorf("%w: name, email, phone y address son requeridos", domain.ErrInvalidInput)
	}
	now := time.Now()
	c := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		Notes:     in.Notes,
		CreatedBy: ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// List devuelve todos los clientes del propietario.
func (uc *CustomerUseCase) List(ctx context.Context, ownerID string) ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return toCustomerResponses(list), nil
}

// Search busca por substring case-insensitive en name o email, acotado al
// propietario. Query vacío devuelve lo mismo que List.
func (uc *CustomerUseCase) Search(ctx context.Context, ownerID, query string) ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.SearchByOwner(ctx, ownerID, query)
	if err != nil {
		return nil, err
	}
	return toCustomerResponses(list), nil
}

// Get obtiene un cliente por id. ErrNotFound tanto si no existe como si
// pertenece a otro propietario.
func (uc *CustomerUseCase) Get(ctx context.Context, ownerID, id string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByOwnerAndID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(c), nil
}

// Update aplica solo los campos presentes en la petición; los ausentes
// conservan su valor. Actualiza updated_at.
func (uc *CustomerUseCase) Update(ctx context.Context, ownerID, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByOwnerAndID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.Phone != nil {
		c.Phone = *in.Phone
	}
	if in.Address != nil {
		c.Address = *in.Address
	}
	if in.Notes != nil {
		c.Notes = *in.Notes
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// Delete elimina permanentemente un cliente del propietario. Sin recuperación.
func (uc *CustomerUseCase) Delete(ctx context.Context, ownerID, id string) error {
	deleted, err := uc.repo.DeleteByOwner(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		Notes:     c.Notes,
		CreatedBy: c.CreatedBy,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCustomerResponses(list []*entity.Customer) []*dto.CustomerResponse {
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out
}
