package entity

import "time"

// User representa un usuario registrado del sistema.
// Un email corresponde exactamente a una cuenta (unicidad en el store).
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // hash bcrypt, nunca la contraseña en claro
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
