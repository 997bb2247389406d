package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// DashboardUseCase métricas agregadas del tablero principal.
type DashboardUseCase struct {
	customerRepo repository.CustomerRepository
	requestRepo  repository.SubscriptionRequestRepository
	invoiceRepo  repository.InvoiceRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	customerRepo repository.CustomerRepository,
	requestRepo repository.SubscriptionRequestRepository,
	invoiceRepo repository.InvoiceRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		customerRepo: customerRepo,
		requestRepo:  requestRepo,
		invoiceRepo:  invoiceRepo,
	}
}

// Stats devuelve los totales del tablero. Lecturas independientes, sin
// garantía de snapshot entre contadores.
func (uc *DashboardUseCase) Stats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	totalCustomers, err := uc.customerRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("dashboard: contar clientes: %w", err)
	}
	approved, err := uc.requestRepo.CountByStatus(entity.RequestStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("dashboard: contar suscripciones: %w", err)
	}
	pendingReqs, err := uc.requestRepo.CountByStatus(entity.RequestStatusPending)
	if err != nil {
		return nil, fmt.Errorf("dashboard: contar solicitudes pendientes: %w", err)
	}
	pendingInvoices, err := uc.invoiceRepo.CountByStatus(entity.InvoiceStatusPending)
	if err != nil {
		return nil, fmt.Errorf("dashboard: contar facturas pendientes: %w", err)
	}
	paidRevenue, err := uc.invoiceRepo.SumAmountByStatus(entity.InvoiceStatusPaid)
	if err != nil {
		return nil, fmt.Errorf("dashboard: sumar facturación pagada: %w", err)
	}
	return &dto.DashboardStatsResponse{
		TotalCustomers:      totalCustomers,
		ActiveSubscriptions: approved,
		PendingRequests:     pendingReqs,
		PendingInvoices:     pendingInvoices,
		PaidRevenue:         paidRevenue,
	}, nil
}
