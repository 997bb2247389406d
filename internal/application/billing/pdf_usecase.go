package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// PDFUseCase genera el artefacto PDF de una factura y persiste su
// referencia. Todo-o-nada desde la vista del caller: ante cualquier
// fallo no se escribe nada y no se devuelve referencia parcial.
//
// El nombre del objeto se deriva del número de factura, así que la
// referencia es estable: regenerar reemplaza el artefacto anterior y
// pdf_url nunca queda vacío después de un éxito.
type PDFUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	generator    InvoicePDFGenerator
	store        ArtifactStore
	notifier     ChangeNotifier
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	generator InvoicePDFGenerator,
	store ArtifactStore,
	notifier ChangeNotifier,
) *PDFUseCase {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &PDFUseCase{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		generator:    generator,
		store:        store,
		notifier:     notifier,
	}
}

// GenerateInvoicePDF renderiza el PDF de la factura, lo sube al almacén
// de artefactos y persiste la URL en pdf_url (única escritura, al final).
//
// Retorna:
//   - (url, nil)                  si todo sale bien.
//   - domain.ErrInvoiceNotFound   si la factura no existe (cero escrituras).
//   - error                       si falla el render, la subida o la escritura.
func (uc *PDFUseCase) GenerateInvoicePDF(ctx context.Context, invoiceID string) (string, error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return "", domain.ErrInvoiceNotFound
	}

	customer, err := uc.customerRepo.GetByID(inv.CustomerID)
	if err != nil {
		return "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	if customer == nil {
		return "", domain.ErrCustomerNotFound
	}

	pdfBytes, err := uc.generator.GenerateInvoicePDF(ctx, inv, customer)
	if err != nil {
		return "", fmt.Errorf("pdf: renderizar factura %s: %w", inv.Number, err)
	}

	url, err := uc.store.SavePDF(ctx, inv.Number+".pdf", pdfBytes)
	if err != nil {
		return "", fmt.Errorf("pdf: subir artefacto de %s: %w", inv.Number, err)
	}

	// Última escritura: si falla, el caller no recibe referencia alguna.
	if err := uc.invoiceRepo.UpdatePDFURL(inv.ID, url); err != nil {
		return "", fmt.Errorf("pdf: persistir pdf_url de %s: %w", inv.Number, err)
	}

	uc.notifier.Changed(ctx, CollectionInvoices)
	return url, nil
}
