package entity

import "time"

// Customer representa un cliente del CRM. CreatedBy referencia al usuario
// que lo creó: se asigna una vez en la creación y nunca se reasigna; toda
// lectura y mutación se filtra por ese propietario.
type Customer struct {
	ID        string
	Name      string
	Email     string // único global, no por propietario
	Phone     string
	Address   string
	Notes     string
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}
