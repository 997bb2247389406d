package billing

import (
	"context"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

// Colecciones que emiten señales de cambio tras una mutación exitosa.
// Cualquier consumidor (UI, caché) decide cómo refrescarse.
const (
	CollectionRequests  = "subscription_requests"
	CollectionCustomers = "customers"
	CollectionInvoices  = "invoices"
)

// ChangeNotifier emite una señal de invalidación para una colección.
// Las implementaciones deben ser best-effort: un fallo al publicar no
// puede revertir ni fallar la mutación ya confirmada.
type ChangeNotifier interface {
	Changed(ctx context.Context, collection string)
}

// NopNotifier descarta las señales (tests, despliegues sin Redis).
type NopNotifier struct{}

// Changed no hace nada.
func (NopNotifier) Changed(context.Context, string) {}

// InvoicePDFGenerator genera los bytes del PDF de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, customer *entity.Customer) ([]byte, error)
}

// ArtifactStore guarda el artefacto y devuelve una URL estable y
// recuperable. El nombre del objeto es determinista (derivado del
// número de factura), así que regenerar reemplaza el artefacto anterior.
type ArtifactStore interface {
	SavePDF(ctx context.Context, objectName string, data []byte) (string, error)
}
