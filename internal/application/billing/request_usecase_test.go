package billing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturacion-api/internal/application/billing"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "fatal"})
}

func pendingRequest(id string, createdAt time.Time) *entity.SubscriptionRequest {
	return &entity.SubscriptionRequest{
		ID:        id,
		Name:      "Ana Gómez",
		Email:     "ana@example.com",
		Phone:     "3001234567",
		Address:   "Calle 10 #5-23",
		Status:    entity.RequestStatusPending,
		CreatedAt: createdAt,
	}
}

// Aprobar materializa exactamente un cliente activo con los datos de la
// solicitud y transiciona pending→approved.
func TestResolve_ApproveCreaClienteYTransiciona(t *testing.T) {
	requests := newFakeRequestRepo()
	customers := newFakeCustomerRepo()
	notifier := &fakeNotifier{}
	requests.add(pendingRequest("req-1", time.Now()))

	uc := billing.NewRequestUseCase(requests, customers, notifier, testLogger())
	resp, err := uc.Resolve(context.Background(), "req-1", billing.DecisionApprove)
	require.NoError(t, err)

	require.Len(t, customers.created, 1, "debe crearse exactamente un cliente")
	c := customers.created[0]
	assert.Equal(t, "Ana Gómez", c.Name)
	assert.Equal(t, "ana@example.com", c.Email)
	assert.Equal(t, "3001234567", c.Phone)
	assert.Equal(t, "Calle 10 #5-23", c.Address)
	assert.Equal(t, entity.CustomerStatusActive, c.Status)

	assert.Equal(t, entity.RequestStatusApproved, requests.byID["req-1"].Status)
	require.NotNil(t, resp.Customer, "la respuesta de aprobación incluye el cliente")
	assert.Equal(t, c.ID, resp.Customer.ID)
	assert.Equal(t, entity.RequestStatusApproved, resp.Request.Status)

	assert.Contains(t, notifier.collections, billing.CollectionRequests)
	assert.Contains(t, notifier.collections, billing.CollectionCustomers)
}

// Rechazar no crea ningún cliente.
func TestResolve_RejectNoCreaCliente(t *testing.T) {
	requests := newFakeRequestRepo()
	customers := newFakeCustomerRepo()
	notifier := &fakeNotifier{}
	requests.add(pendingRequest("req-1", time.Now()))

	uc := billing.NewRequestUseCase(requests, customers, notifier, testLogger())
	resp, err := uc.Resolve(context.Background(), "req-1", billing.DecisionReject)
	require.NoError(t, err)

	assert.Empty(t, customers.created, "rechazar no debe crear clientes")
	assert.Equal(t, entity.RequestStatusRejected, requests.byID["req-1"].Status)
	assert.Nil(t, resp.Customer)
	assert.Contains(t, notifier.collections, billing.CollectionRequests)
	assert.NotContains(t, notifier.collections, billing.CollectionCustomers)
}

// Resolver una solicitud ya resuelta no tiene efectos secundarios.
func TestResolve_YaResuelta_SinEfectos(t *testing.T) {
	requests := newFakeRequestRepo()
	customers := newFakeCustomerRepo()
	req := pendingRequest("req-1", time.Now())
	req.Status = entity.RequestStatusApproved
	requests.add(req)

	uc := billing.NewRequestUseCase(requests, customers, &fakeNotifier{}, testLogger())
	_, err := uc.Resolve(context.Background(), "req-1", billing.DecisionApprove)

	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
	assert.Empty(t, customers.created)
	assert.Zero(t, requests.updateCalls, "no debe intentarse ninguna transición")
}

func TestResolve_SolicitudInexistente(t *testing.T) {
	uc := billing.NewRequestUseCase(newFakeRequestRepo(), newFakeCustomerRepo(), &fakeNotifier{}, testLogger())
	_, err := uc.Resolve(context.Background(), "no-existe", billing.DecisionApprove)
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
}

func TestResolve_DecisionInvalida(t *testing.T) {
	uc := billing.NewRequestUseCase(newFakeRequestRepo(), newFakeCustomerRepo(), &fakeNotifier{}, testLogger())
	_, err := uc.Resolve(context.Background(), "req-1", "maybe")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Si falla crear el cliente, la solicitud sigue pendiente (reintentable).
func TestResolve_FalloAlCrearCliente_SolicitudSiguePendiente(t *testing.T) {
	requests := newFakeRequestRepo()
	customers := newFakeCustomerRepo()
	customers.createErr = errors.New("db caída")
	requests.add(pendingRequest("req-1", time.Now()))

	uc := billing.NewRequestUseCase(requests, customers, &fakeNotifier{}, testLogger())
	_, err := uc.Resolve(context.Background(), "req-1", billing.DecisionApprove)

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrPartialApproval)
	assert.Equal(t, entity.RequestStatusPending, requests.byID["req-1"].Status)
	assert.Zero(t, requests.updateCalls, "sin cliente no debe intentarse la transición")
}

// Cliente creado pero la transición falla: aprobación parcial.
func TestResolve_TransicionFallaTrasCrearCliente_AprobacionParcial(t *testing.T) {
	requests := newFakeRequestRepo()
	customers := newFakeCustomerRepo()
	requests.add(pendingRequest("req-1", time.Now()))
	requests.updateErr = errors.New("timeout del almacén")

	uc := billing.NewRequestUseCase(requests, customers, &fakeNotifier{}, testLogger())
	_, err := uc.Resolve(context.Background(), "req-1", billing.DecisionApprove)

	assert.ErrorIs(t, err, domain.ErrPartialApproval)
	assert.Len(t, customers.created, 1, "el cliente ya fue creado (queda huérfano)")
	assert.Equal(t, entity.RequestStatusPending, requests.byID["req-1"].Status)
}

// Dos resoluciones concurrentes: el CAS del almacén arbitra; el perdedor
// de un reject recibe transición inválida (sin cliente de por medio).
func TestResolve_RejectPierdeCarrera_TransicionInvalida(t *testing.T) {
	requests := newFakeRequestRepo()
	requests.add(pendingRequest("req-1", time.Now()))
	requests.updateErr = domain.ErrConflict

	uc := billing.NewRequestUseCase(requests, newFakeCustomerRepo(), &fakeNotifier{}, testLogger())
	_, err := uc.Resolve(context.Background(), "req-1", billing.DecisionReject)

	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
}

// ListPending preserva el orden del almacén (más recientes primero).
func TestListPending_PreservaOrden(t *testing.T) {
	requests := newFakeRequestRepo()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	// El almacén entrega created_at DESC: t3, t2, t1.
	requests.add(pendingRequest("req-3", base.Add(2*time.Hour)))
	requests.add(pendingRequest("req-2", base.Add(time.Hour)))
	requests.add(pendingRequest("req-1", base))
	resolved := pendingRequest("req-0", base.Add(3*time.Hour))
	resolved.Status = entity.RequestStatusRejected
	requests.add(resolved)

	uc := billing.NewRequestUseCase(requests, newFakeCustomerRepo(), &fakeNotifier{}, testLogger())
	list, err := uc.ListPending(context.Background())
	require.NoError(t, err)

	require.Len(t, list, 3, "solo las pendientes")
	assert.Equal(t, "req-3", list[0].ID)
	assert.Equal(t, "req-2", list[1].ID)
	assert.Equal(t, "req-1", list[2].ID)
}
