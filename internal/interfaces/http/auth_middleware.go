package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/repository"
	"github.com/jhoicas/crm-api/pkg/jwt"
)

// LocalUser key en c.Locals para la identidad autenticada (saneada, sin hash).
const LocalUser = "current_user"

// CookieName nombre de la cookie HttpOnly donde login deposita el token.
const CookieName = "token"

// AuthMiddleware verifica la sesión: extrae el token (cookie `token` primero,
// luego Authorization: Bearer), valida firma y expiración, y resuelve el
// subject contra el store de usuarios. No asume integridad referencial: un
// token válido cuyo usuario ya no existe se rechaza. Deja la proyección
// pública del usuario en c.Locals para los handlers protegidos.
func AuthMiddleware(jwtSecret string, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(CookieName)
		if tokenString == "" {
			authHeader := c.Get("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenString = strings.TrimSpace(parts[1])
			}
		}
		if tokenString == "" {
			return respondError(c, domain.ErrMissingToken)
		}
		userID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return respondError(c, domain.ErrInvalidToken)
		}
		user, err := users.GetByID(c.Context(), userID)
		if err != nil {
			return respondError(c, err)
		}
		if user == nil {
			return respondError(c, domain.ErrUserNotFound)
		}
		c.Locals(LocalUser, &dto.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		})
		return c.Next()
	}
}

// GetCurrentUser devuelve la identidad autenticada (después del middleware de auth).
func GetCurrentUser(c *fiber.Ctx) *dto.UserResponse {
	v := c.Locals(LocalUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*dto.UserResponse)
	return u
}
