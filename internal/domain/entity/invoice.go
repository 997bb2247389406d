package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de factura. El estado almacenado es la fuente de verdad:
// nunca se deriva ni se auto-transiciona por fecha de vencimiento.
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

// Invoice representa la cabecera de una factura de suscripción.
// Number lo asigna el almacén de datos (secuencia, único por factura).
// PDFURL lo escribe el generador de artefactos; vacío hasta el primer PDF.
type Invoice struct {
	ID         string
	Number     string
	CustomerID string
	Amount     decimal.Decimal
	DueDate    time.Time
	Status     string // pending, paid, overdue
	PDFURL     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsOverdueAt clasifica la factura como vencida para visualización:
// pendiente y con fecha de vencimiento anterior a now. Solo lectura,
// nunca se escribe de vuelta al estado almacenado.
func (i *Invoice) IsOverdueAt(now time.Time) bool {
	return i.Status == InvoiceStatusPending && i.DueDate.Before(now.Truncate(24*time.Hour))
}

// InvoiceWithCustomer es la proyección de factura + datos del cliente
// usada por los listados (join de solo lectura).
type InvoiceWithCustomer struct {
	Invoice
	CustomerName  string
	CustomerEmail string
}
