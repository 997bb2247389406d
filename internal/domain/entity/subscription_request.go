package entity

import "time"

// Estados de una solicitud de suscripción. El estado es monótono:
// pending → approved | rejected, nunca se revierte.
const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

// SubscriptionRequest representa la solicitud de un prospecto para convertirse
// en cliente facturable. La crea el prospecto (fuera de alcance) y la resuelve
// el staff exactamente una vez.
type SubscriptionRequest struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	Status    string // pending, approved, rejected
	CreatedAt time.Time
}

// IsPending indica si la solicitud todavía admite una decisión.
func (r *SubscriptionRequest) IsPending() bool {
	return r.Status == RequestStatusPending
}
