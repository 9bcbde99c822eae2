package customer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcustomer "github.com/jhoicas/crm-api/internal/application/customer"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/infrastructure/memory"
)

const (
	ownerA = "00000000-0000-0000-0000-00000000000a"
	ownerB = "00000000-0000-0000-0000-00000000000b"
)

func newTestUseCase() *appcustomer.CustomerUseCase {
	return appcustomer.NewCustomerUseCase(memory.NewCustomerRepository())
}

func strPtr(s string) *string { return &s }

func mustCreate(t *testing.T, uc *appcustomer.CustomerUseCase, ownerID string, in dto.CreateCustomerRequest) *dto.CustomerResponse {
	t.Helper()
	out, err := uc.Create(context.Background(), ownerID, in)
	require.NoError(t, err)
	return out
}

func johnRequest() dto.CreateCustomerRequest {
	return dto.CreateCustomerRequest{
		Name:    "John Doe",
		Email:   "john@cliente.com",
		Phone:   "3001234567",
		Address: "Calle 1 #2-3",
		Notes:   "primer contacto",
	}
}

func TestCreate_RoundTrip(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	created := mustCreate(t, uc, ownerA, johnRequest())
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, ownerA, created.CreatedBy)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := uc.Get(ctx, ownerA, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCreate_CamposRequeridos(t *testing.T) {
	uc := newTestUseCase()

	in := johnRequest()
	in.Phone = ""
	_, err := uc.Create(context.Background(), ownerA, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_NotasOpcionales(t *testing.T) {
	uc := newTestUseCase()

	in := johnRequest()
	in.Notes = ""
	out, err := uc.Create(context.Background(), ownerA, in)
	require.NoError(t, err)
	assert.Empty(t, out.Notes)
}

// El email de cliente es único global, incluso entre propietarios distintos:
// propiedad heredada del esquema, preservada a propósito.
func TestCreate_EmailDuplicadoGlobal(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	mustCreate(t, uc, ownerA, johnRequest())

	in := johnRequest()
	in.Name = "Otro John"
	_, err := uc.Create(ctx, ownerB, in)
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

// Enmascaramiento de existencia: para el propietario B un cliente de A se
// comporta exactamente como un id inexistente (404, nunca 403).
func TestOwnership_OtroPropietarioVeNotFound(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	created := mustCreate(t, uc, ownerA, johnRequest())

	_, err := uc.Get(ctx, ownerB, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Update(ctx, ownerB, created.ID, dto.UpdateCustomerRequest{Notes: strPtr("hack")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Delete(ctx, ownerB, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// El registro sigue intacto para su propietario.
	got, err := uc.Get(ctx, ownerA, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "primer contacto", got.Notes)
}

func TestGet_IDInexistente(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.Get(context.Background(), ownerA, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Actualización parcial: los campos ausentes conservan su valor previo.
func TestUpdate_ParcialNoAnulaCampos(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	created := mustCreate(t, uc, ownerA, johnRequest())

	updated, err := uc.Update(ctx, ownerA, created.ID, dto.UpdateCustomerRequest{Notes: strPtr("cliente frecuente")})
	require.NoError(t, err)

	assert.Equal(t, "cliente frecuente", updated.Notes)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Email, updated.Email)
	assert.Equal(t, created.Phone, updated.Phone)
	assert.Equal(t, created.Address, updated.Address)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestUpdate_VariosCampos(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	created := mustCreate(t, uc, ownerA, johnRequest())

	updated, err := uc.Update(ctx, ownerA, created.ID, dto.UpdateCustomerRequest{
		Name:  strPtr("John Actualizado"),
		Phone: strPtr("3009999999"),
	})
	require.NoError(t, err)
	assert.Equal(t, "John Actualizado", updated.Name)
	assert.Equal(t, "3009999999", updated.Phone)
	assert.Equal(t, created.Address, updated.Address)
}

func TestDelete_EliminaPermanente(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	created := mustCreate(t, uc, ownerA, johnRequest())

	require.NoError(t, uc.Delete(ctx, ownerA, created.ID))

	_, err := uc.Get(ctx, ownerA, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Borrar dos veces también es NotFound.
	err = uc.Delete(ctx, ownerA, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSearch_VaciaEquivaleAList(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	mustCreate(t, uc, ownerA, johnRequest())
	in := johnRequest()
	in.Name = "Jane Roe"
	in.Email = "jane@cliente.com"
	mustCreate(t, uc, ownerA, in)

	list, err := uc.List(ctx, ownerA)
	require.NoError(t, err)
	searched, err := uc.Search(ctx, ownerA, "")
	require.NoError(t, err)
	assert.Equal(t, list, searched)
	assert.Len(t, searched, 2)
}

func TestSearch_CaseInsensitiveEnNombreOEmail(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	mustCreate(t, uc, ownerA, johnRequest()) // name "John Doe", email john@...
	in := johnRequest()
	in.Name = "Jane Roe"
	in.Email = "contacto@johnson.com" // matchea "john" solo por email
	mustCreate(t, uc, ownerA, in)
	in2 := johnRequest()
	in2.Name = "Pedro Pérez"
	in2.Email = "pedro@cliente.com"
	mustCreate(t, uc, ownerA, in2)

	out, err := uc.Search(ctx, ownerA, "JOHN")
	require.NoError(t, err)
	require.Len(t, out, 2)
	names := []string{out[0].Name, out[1].Name}
	assert.Contains(t, names, "John Doe")
	assert.Contains(t, names, "Jane Roe")
}

func TestSearch_AcotadaAlPropietario(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	mustCreate(t, uc, ownerA, johnRequest())
	in := johnRequest()
	in.Email = "john.b@cliente.com"
	mustCreate(t, uc, ownerB, in)

	out, err := uc.Search(ctx, ownerA, "john")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, ownerA, out[0].CreatedBy)
}
