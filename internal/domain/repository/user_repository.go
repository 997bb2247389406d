package repository

import "github.com/jhoicas/Facturacion-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para usuarios del staff.
type UserRepository interface {
	Create(user *entity.User) error
	FindByEmail(email string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
}
