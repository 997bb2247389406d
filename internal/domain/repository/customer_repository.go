package repository

import "github.com/jhoicas/Facturacion-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	// List devuelve los clientes ordenados por created_at descendente.
	List(limit, offset int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	// Count devuelve el total de clientes (dashboard).
	Count() (int, error)
}
