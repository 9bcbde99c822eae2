package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/auth"
	"github.com/jhoicas/crm-api/internal/application/dto"
)

// AuthHandler maneja registro y login.
type AuthHandler struct {
	uc        *auth.AuthUseCase
	expHours  int
	secureEnv bool // cookie Secure solo fuera de development
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, expHours int, appEnv string) *AuthHandler {
	return &AuthHandler{uc: uc, expHours: expHours, secureEnv: appEnv != "development"}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "name, email, password"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if _, err := h.uc.Register(c.Context(), in); err != nil {
		return respondError(c, err)
	}
	// El registro no emite token: el cliente debe hacer login.
	return c.Status(fiber.StatusCreated).JSON(dto.Response{Success: true, Message: "registro exitoso"})
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.Response{data=dto.LoginResponse}
// @Failure      400   {object}  dto.Response
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	// Cookie HttpOnly con la misma vigencia del token, para que el SPA no
	// tenga que guardar el JWT en storage accesible por JS.
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    out.Token,
		Expires:  time.Now().Add(time.Duration(h.expHours) * time.Hour),
		HTTPOnly: true,
		Secure:   h.secureEnv,
		SameSite: fiber.CookieSameSiteNoneMode,
	})
	return c.JSON(dto.OK("login exitoso", out))
}
