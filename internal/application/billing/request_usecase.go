package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
)

// Decisiones posibles sobre una solicitud pendiente.
const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

// RequestUseCase resuelve solicitudes de suscripción: una solicitud
// pendiente pasa a approved (materializando un Customer) o rejected.
//
// La aprobación es un protocolo de dos pasos sin transacción:
//  1. crear el Customer con los datos de la solicitud;
//  2. transición condicional pending→approved en el almacén.
//
// Si (1) falla, la solicitud queda pendiente y se puede reintentar. Si
// (2) falla después de (1), queda un Customer huérfano con la solicitud
// aún pendiente: se reporta como domain.ErrPartialApproval y se registra
// con los IDs para reconciliación manual.
type RequestUseCase struct {
	requestRepo  repository.SubscriptionRequestRepository
	customerRepo repository.CustomerRepository
	notifier     ChangeNotifier
	log          *logger.Logger
}

// NewRequestUseCase construye el caso de uso.
func NewRequestUseCase(
	requestRepo repository.SubscriptionRequestRepository,
	customerRepo repository.CustomerRepository,
	notifier ChangeNotifier,
	log *logger.Logger,
) *RequestUseCase {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &RequestUseCase{
		requestRepo:  requestRepo,
		customerRepo: customerRepo,
		notifier:     notifier,
		log:          log,
	}
}

// ListPending devuelve las solicitudes pendientes, las más recientes
// primero (created_at descendente).
func (uc *RequestUseCase) ListPending(ctx context.Context) ([]*dto.SubscriptionRequestResponse, error) {
	list, err := uc.requestRepo.ListByStatus(entity.RequestStatusPending)
	if err != nil {
		return nil, fmt.Errorf("listar solicitudes pendientes: %w", err)
	}
	out := make([]*dto.SubscriptionRequestResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toRequestResponse(r))
	}
	return out, nil
}

// Resolve aplica la decisión del staff sobre una solicitud pendiente.
// Repetir la llamada sobre una solicitud ya resuelta retorna
// domain.ErrInvalidStateTransition sin efectos secundarios.
func (uc *RequestUseCase) Resolve(ctx context.Context, requestID, decision string) (*dto.ResolveRequestResponse, error) {
	if decision != DecisionApprove && decision != DecisionReject {
		return nil, domain.ErrInvalidInput
	}

	req, err := uc.requestRepo.GetByID(requestID)
	if err != nil {
		return nil, fmt.Errorf("obtener solicitud: %w", err)
	}
	if req == nil {
		return nil, domain.ErrRequestNotFound
	}
	if !req.IsPending() {
		return nil, domain.ErrInvalidStateTransition
	}

	// Paso 1 (solo approve): materializar el cliente ANTES de tocar el
	// estado. Una solicitud nunca puede quedar approved sin su Customer.
	var customer *entity.Customer
	if decision == DecisionApprove {
		now := time.Now()
		customer = &entity.Customer{
			ID:        uuid.New().String(),
			Name:      req.Name,
			Email:     req.Email,
			Phone:     req.Phone,
			Address:   req.Address,
			Status:    entity.CustomerStatusActive,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.customerRepo.Create(customer); err != nil {
			// La solicitud sigue pendiente: fallo limpio, reintentable.
			return nil, fmt.Errorf("crear cliente desde solicitud: %w", err)
		}
	}

	// Paso 2: transición condicional pending→{approved,rejected}. El
	// almacén rechaza la segunda resolución concurrente (CAS).
	to := entity.RequestStatusRejected
	if decision == DecisionApprove {
		to = entity.RequestStatusApproved
	}
	if err := uc.requestRepo.UpdateStatus(requestID, entity.RequestStatusPending, to); err != nil {
		if customer != nil {
			// Cliente creado pero la solicitud no quedó approved: estado
			// inconsistente que requiere reconciliación manual.
			uc.log.Error().
				Str("request_id", requestID).
				Str("customer_id", customer.ID).
				Err(err).
				Msg("aprobación parcial: cliente creado sin transición de la solicitud")
			return nil, domain.ErrPartialApproval
		}
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.ErrInvalidStateTransition
		}
		return nil, fmt.Errorf("actualizar estado de la solicitud: %w", err)
	}

	req.Status = to
	uc.notifier.Changed(ctx, CollectionRequests)
	if customer != nil {
		uc.notifier.Changed(ctx, CollectionCustomers)
	}

	resp := &dto.ResolveRequestResponse{Request: *toRequestResponse(req)}
	if customer != nil {
		resp.Customer = toCustomerResponse(customer)
	}
	return resp, nil
}

func toRequestResponse(r *entity.SubscriptionRequest) *dto.SubscriptionRequestResponse {
	return &dto.SubscriptionRequestResponse{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Address:   r.Address,
		Status:    r.Status,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}
