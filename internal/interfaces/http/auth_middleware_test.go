package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/crm-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/crm-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "crm-api-test"
	testExpHours  = 24
)

// buildProtectedApp construye una aplicación Fiber mínima con el middleware de
// sesión y un handler dummy que expone la identidad resuelta.
func buildProtectedApp(users *memory.UserRepo) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, users),
		func(c *fiber.Ctx) error {
			u := apphttp.GetCurrentUser(c)
			return c.JSON(fiber.Map{"id": u.ID, "name": u.Name, "email": u.Email})
		},
	)
	return app
}

// seedUser registra un usuario directamente en el repo en memoria.
func seedUser(t *testing.T, users *memory.UserRepo, id, name, email string) {
	t.Helper()
	require.NoError(t, users.Create(context.Background(), &entity.User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: "$2a$10$hash-irrelevante-para-el-middleware",
	}))
}

func tokenFor(t *testing.T, userID string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, testIssuer, testExpHours)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return tok
}

// doProtected lanza GET /protected con las credenciales indicadas.
func doProtected(t *testing.T, app *fiber.App, modify func(*http.Request)) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if modify != nil {
		modify(req)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinToken_Retorna401(t *testing.T) {
	users := memory.NewUserRepository()
	app := buildProtectedApp(users)

	resp := doProtected(t, app, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	users := memory.NewUserRepository()
	app := buildProtectedApp(users)

	resp := doProtected(t, app, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer token.invalido.aqui")
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	users := memory.NewUserRepository()
	seedUser(t, users, testUserID, "Alice", "a@x.com")
	app := buildProtectedApp(users)

	expired, err := pkgjwt.Generate(testJWTSecret, testUserID, testIssuer, -1)
	require.NoError(t, err)

	resp := doProtected(t, app, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+expired)
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoBearerInvalido_Retorna401(t *testing.T) {
	users := memory.NewUserRepository()
	seedUser(t, users, testUserID, "Alice", "a@x.com")
	app := buildProtectedApp(users)

	resp := doProtected(t, app, func(r *http.Request) {
		r.Header.Set("Authorization", tokenFor(t, testUserID)) // sin prefijo Bearer
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenPorHeader_ResuelveIdentidad(t *testing.T) {
	users := memory.NewUserRepository()
	seedUser(t, users, testUserID, "Alice", "a@x.com")
	app := buildProtectedApp(users)

	resp := doProtected(t, app, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+tokenFor(t, testUserID))
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["id"])
	assert.Equal(t, "Alice", body["name"])
	assert.Equal(t, "a@x.com", body["email"])
}

func TestAuthMiddleware_TokenPorCookie_ResuelveIdentidad(t *testing.T) {
	users := memory.NewUserRepository()
	seedUser(t, users, testUserID, "Alice", "a@x.com")
	app := buildProtectedApp(users)

	resp := doProtected(t, app, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: apphttp.CookieName, Value: tokenFor(t, testUserID)})
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// La cookie tiene precedencia sobre el header cuando llegan ambos.
func TestAuthMiddleware_CookiePrecedeAlHeader(t *testing.T) {
	users := memory.NewUserRepository()
	seedUser(t, users, testUserID, "Alice", "a@x.com")
	otherID := "00000000-0000-0000-0000-000000000002"
	seedUser(t, users, otherID, "Bob", "b@x.com")
	app := buildProtectedApp(users)

	resp := doProtected(t, app, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: apphttp.CookieName, Value: tokenFor(t, testUserID)})
		r.Header.Set("Authorization", "Bearer "+tokenFor(t, otherID))
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["id"], "la identidad debe salir de la cookie, no del header")
}

// Un token firmado y vigente cuyo usuario ya no existe debe rechazarse: el
// verificador no asume integridad referencial entre emisión y uso.
func TestAuthMiddleware_UsuarioBorrado_Retorna404(t *testing.T) {
	users := memory.NewUserRepository()
	seedUser(t, users, testUserID, "Alice", "a@x.com")
	app := buildProtectedApp(users)

	tok := tokenFor(t, testUserID)
	users.Delete(testUserID)

	resp := doProtected(t, app, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+tok)
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testIssuer, testExpHours)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	subject, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, subject)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 hora (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testIssuer, testExpHours)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
