package entity

import "time"

// Estados de cliente.
const (
	CustomerStatusActive   = "active"
	CustomerStatusInactive = "inactive"
)

// Customer representa un cliente facturable (suscriptor aprobado o creado por el staff).
// El ID es inmutable; los datos de contacto pueden cambiar. Nunca se elimina.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
