package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// dueDateLayout formato de fecha de vencimiento aceptado en la API.
const dueDateLayout = "2006-01-02"

// InvoiceUseCase ciclo de vida de facturas: creación contra un cliente
// existente, cambio de estado explícito por el staff y listado filtrado.
//
// El estado almacenado es la fuente de verdad: ningún proceso lo deriva
// ni lo auto-transiciona por fecha. La clasificación "vencida" de los
// listados es de solo lectura y nunca se escribe de vuelta.
type InvoiceUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	notifier     ChangeNotifier
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	notifier ChangeNotifier,
) *InvoiceUseCase {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &InvoiceUseCase{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		notifier:     notifier,
	}
}

// Create crea una factura pendiente contra un cliente existente.
// El número de factura lo asigna el almacén (único por factura); una
// colisión se propaga como domain.ErrDuplicateInvoiceNumber sin
// escritura parcial.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.CustomerID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Amount.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}
	dueDate, err := time.Parse(dueDateLayout, in.DueDate)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}

	// Integridad referencial verificada por el engine, no asumida del
	// almacén: el cliente debe existir al momento de crear.
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("verificar cliente: %w", err)
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}

	now := time.Now()
	inv := &entity.Invoice{
		ID:         uuid.New().String(),
		CustomerID: in.CustomerID,
		Amount:     in.Amount,
		DueDate:    dueDate,
		Status:     entity.InvoiceStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.invoiceRepo.Create(inv); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrDuplicateInvoiceNumber
		}
		return nil, err
	}

	uc.notifier.Changed(ctx, CollectionInvoices)
	resp := toInvoiceResponse(inv, now)
	resp.CustomerName = customer.Name
	resp.CustomerEmail = customer.Email
	return resp, nil
}

// List proyección de solo lectura sobre las facturas (join con nombre y
// email del cliente), ordenada por created_at descendente.
//
// Filtros: Search hace substring case-insensitive sobre el número de
// factura O el nombre del cliente; Status "all" (o vacío) no filtra.
// Ambos componen con AND.
func (uc *InvoiceUseCase) List(ctx context.Context, search, status string) ([]*dto.InvoiceResponse, error) {
	if status == "all" {
		status = ""
	}
	list, err := uc.invoiceRepo.List(repository.InvoiceFilter{Search: search, Status: status})
	if err != nil {
		return nil, fmt.Errorf("listar facturas: %w", err)
	}
	now := time.Now()
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, row := range list {
		resp := toInvoiceResponse(&row.Invoice, now)
		resp.CustomerName = row.CustomerName
		resp.CustomerEmail = row.CustomerEmail
		out = append(out, resp)
	}
	return out, nil
}

// GetByID obtiene una factura con los datos del cliente.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrInvoiceNotFound
	}
	customer, err := uc.customerRepo.GetByID(inv.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("verificar cliente: %w", err)
	}
	resp := toInvoiceResponse(inv, time.Now())
	if customer != nil {
		resp.CustomerName = customer.Name
		resp.CustomerEmail = customer.Email
	}
	return resp, nil
}

// SetStatus fija el estado almacenado por acción explícita del staff.
func (uc *InvoiceUseCase) SetStatus(ctx context.Context, id, status string) error {
	switch status {
	case entity.InvoiceStatusPending, entity.InvoiceStatusPaid, entity.InvoiceStatusOverdue:
	default:
		return domain.ErrInvalidInput
	}
	if err := uc.invoiceRepo.UpdateStatus(id, status); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrInvoiceNotFound
		}
		return err
	}
	uc.notifier.Changed(ctx, CollectionInvoices)
	return nil
}

func toInvoiceResponse(inv *entity.Invoice, now time.Time) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:         inv.ID,
		Number:     inv.Number,
		CustomerID: inv.CustomerID,
		Amount:     inv.Amount,
		DueDate:    inv.DueDate.Format(dueDateLayout),
		Status:     inv.Status,
		Overdue:    inv.IsOverdueAt(now),
		PDFURL:     inv.PDFURL,
		CreatedAt:  inv.CreatedAt.Format(time.RFC3339),
	}
}
