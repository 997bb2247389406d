package repository

import "github.com/jhoicas/Facturacion-api/internal/domain/entity"

// SubscriptionRequestRepository define el puerto de persistencia para
// SubscriptionRequest. Las solicitudes las crea el prospecto (fuera del
// core); aquí solo se leen y se resuelven.
type SubscriptionRequestRepository interface {
	Create(request *entity.SubscriptionRequest) error
	GetByID(id string) (*entity.SubscriptionRequest, error)
	// ListByStatus devuelve las solicitudes con ese estado ordenadas por
	// created_at descendente (las más recientes primero, para triage).
	ListByStatus(status string) ([]*entity.SubscriptionRequest, error)
	// UpdateStatus hace la transición from→to de forma condicional
	// (compare-and-swap): si la solicitud ya no está en from, no afecta
	// filas y retorna domain.ErrConflict. El almacén es el árbitro único
	// ante resoluciones concurrentes sobre la misma solicitud.
	UpdateStatus(id, from, to string) error
	// CountByStatus devuelve el total de solicitudes con ese estado (dashboard).
	CountByStatus(status string) (int, error)
}
