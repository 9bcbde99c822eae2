package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación en memoria de UserRepository.
// Mantiene las mismas invariantes que el adaptador de PostgreSQL
// (un email por cuenta) para que los tests ejerciten la semántica real.
type UserRepo struct {
	mu    sync.RWMutex
	users map[string]*entity.User // por ID
}

// NewUserRepository construye el repositorio en memoria.
func NewUserRepository() *UserRepo {
	return &UserRepo{users: make(map[string]*entity.User)}
}

// Create persiste un usuario. Devuelve ErrEmailAlreadyExists si el email ya existe.
func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

// GetByID devuelve el usuario o (nil, nil) si no existe.
func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

// GetByEmail devuelve el usuario o (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// Delete elimina un usuario; usado por tests para simular cuentas borradas
// entre emisión y verificación del token.
func (r *UserRepo) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
}
