package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

var _ repository.SubscriptionRequestRepository = (*SubscriptionRequestRepo)(nil)

// SubscriptionRequestRepo implementación de SubscriptionRequestRepository.
type SubscriptionRequestRepo struct {
	q Querier
}

// NewSubscriptionRequestRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSubscriptionRequestRepository(q Querier) *SubscriptionRequestRepo {
	return &SubscriptionRequestRepo{q: q}
}

// Create persiste una nueva solicitud (llega del portal del prospecto o del seed).
func (r *SubscriptionRequestRepo) Create(request *entity.SubscriptionRequest) error {
	query := `
		INSERT INTO subscription_requests (id, name, email, phone, address, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		request.ID, request.Name, request.Email, request.Phone, request.Address,
		request.Status, request.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return storeErr("insert subscription request", err)
	}
	return nil
}

// GetByID obtiene una solicitud por ID. Retorna (nil, nil) si no existe.
func (r *SubscriptionRequestRepo) GetByID(id string) (*entity.SubscriptionRequest, error) {
	query := `
		SELECT id, name, email, phone, address, status, created_at
		FROM subscription_requests WHERE id = $1`
	var s entity.SubscriptionRequest
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.Email, &s.Phone, &s.Address, &s.Status, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get subscription request", err)
	}
	return &s, nil
}

// ListByStatus lista solicitudes por estado, las más recientes primero.
func (r *SubscriptionRequestRepo) ListByStatus(status string) ([]*entity.SubscriptionRequest, error) {
	query := `
		SELECT id, name, email, phone, address, status, created_at
		FROM subscription_requests WHERE status = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, status)
	if err != nil {
		return nil, storeErr("list subscription requests", err)
	}
	defer rows.Close()
	var list []*entity.SubscriptionRequest
	for rows.Next() {
		var s entity.SubscriptionRequest
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Address, &s.Status, &s.CreatedAt); err != nil {
			return nil, storeErr("scan subscription request", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// UpdateStatus hace la transición from→to de forma condicional
// (compare-and-swap). Si la solicitud ya no está en from (otra
// resolución concurrente ganó) no afecta filas y retorna
// domain.ErrConflict. El almacén es el único árbitro de la carrera.
func (r *SubscriptionRequestRepo) UpdateStatus(id, from, to string) error {
	query := `UPDATE subscription_requests SET status = $3 WHERE id = $1 AND status = $2`
	tag, err := r.q.Exec(context.Background(), query, id, from, to)
	if err != nil {
		return storeErr("update subscription request status", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}

// CountByStatus devuelve el total de solicitudes con ese estado.
func (r *SubscriptionRequestRepo) CountByStatus(status string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM subscription_requests WHERE status = $1`, status).Scan(&n)
	if err != nil {
		return 0, storeErr("count subscription requests", err)
	}
	return n, nil
}
