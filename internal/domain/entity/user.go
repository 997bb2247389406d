package entity

import "time"

// Roles de staff.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
)

// User representa un usuario del staff del back-office.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // ver constantes Role*
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
