package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

// InvoiceFilter filtros del listado de facturas. Search busca como
// substring case-insensitive sobre invoice_number O el nombre del
// cliente; Status "" o "all" no filtra. Ambos componen con AND.
type InvoiceFilter struct {
	Search string
	Status string
}

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	// Create persiste la factura. Si invoice.Number está vacío, el almacén
	// asigna uno único (secuencia); una violación de unicidad retorna
	// domain.ErrDuplicateInvoiceNumber sin escritura parcial.
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	// List devuelve facturas con nombre/email del cliente (join de solo
	// lectura), ordenadas por created_at descendente.
	List(filter InvoiceFilter) ([]*entity.InvoiceWithCustomer, error)
	// UpdateStatus fija el estado almacenado (acción explícita del staff).
	UpdateStatus(id, status string) error
	// UpdatePDFURL persiste la referencia del artefacto PDF.
	UpdatePDFURL(id, pdfURL string) error
	// CountByStatus y SumAmountByStatus alimentan el dashboard.
	CountByStatus(status string) (int, error)
	SumAmountByStatus(status string) (decimal.Decimal, error)
}
