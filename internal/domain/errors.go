package domain

import "errors"

// Errores de dominio (sin dependencias externas). El traductor HTTP
// los mapea a status codes; cualquier otro error termina en 500.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrDuplicateEmail     = errors.New("ya existe un cliente con ese email")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrMissingToken       = errors.New("token de autenticación requerido")
	ErrInvalidToken       = errors.New("token inválido o expirado")
)
