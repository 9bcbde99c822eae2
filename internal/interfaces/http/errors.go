package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
)

// respondError es el único traductor de errores de dominio a HTTP:
// cada error conocido tiene su status; lo no clasificado es un 500 genérico
// para no filtrar detalles internos.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
	case errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrInvalidCredentials):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
	case errors.Is(err, domain.ErrMissingToken), errors.Is(err, domain.ErrInvalidToken):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail(err.Error()))
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail(err.Error()))
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("cliente no encontrado"))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("error del servidor"))
	}
}
