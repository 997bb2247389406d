package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la factura. Si Number está vacío, la secuencia
// invoice_number_seq asigna uno (INV-000042); la columna tiene constraint
// UNIQUE, así que una colisión retorna domain.ErrDuplicateInvoiceNumber
// sin escritura parcial. Un customer_id inexistente dispara la FK y se
// mapea a domain.ErrCustomerNotFound.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	var err error
	if invoice.Number == "" {
		query := `
			INSERT INTO invoices (id, invoice_number, customer_id, amount, due_date, status, created_at, updated_at)
			VALUES ($1, 'INV-' || lpad(nextval('invoice_number_seq')::text, 6, '0'), $2, $3, $4, $5, $6, $7)
			RETURNING invoice_number`
		err = r.q.QueryRow(context.Background(), query,
			invoice.ID, invoice.CustomerID, invoice.Amount, invoice.DueDate,
			invoice.Status, invoice.CreatedAt, invoice.UpdatedAt,
		).Scan(&invoice.Number)
	} else {
		query := `
			INSERT INTO invoices (id, invoice_number, customer_id, amount, due_date, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
		_, err = r.q.Exec(context.Background(), query,
			invoice.ID, invoice.Number, invoice.CustomerID, invoice.Amount, invoice.DueDate,
			invoice.Status, invoice.CreatedAt, invoice.UpdatedAt,
		)
	}
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrCustomerNotFound
		}
		return storeErr("insert invoice", err)
	}
	return nil
}

// GetByID obtiene una factura por ID. Retorna (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `
		SELECT id, invoice_number, customer_id, amount, due_date, status, COALESCE(pdf_url, ''), created_at, updated_at
		FROM invoices WHERE id = $1`
	var i entity.Invoice
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.Number, &i.CustomerID, &i.Amount, &i.DueDate, &i.Status,
		&i.PDFURL, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get invoice", err)
	}
	return &i, nil
}

// List devuelve facturas con nombre/email del cliente, ordenadas por
// created_at descendente. Search filtra como substring case-insensitive
// sobre invoice_number O el nombre del cliente; Status vacío no filtra.
func (r *InvoiceRepo) List(filter repository.InvoiceFilter) ([]*entity.InvoiceWithCustomer, error) {
	query := `
		SELECT i.id, i.invoice_number, i.customer_id, i.amount, i.due_date, i.status,
		       COALESCE(i.pdf_url, ''), i.created_at, i.updated_at, c.name, c.email
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		WHERE ($1 = '' OR i.invoice_number ILIKE '%' || $1 || '%' OR c.name ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR i.status = $2)
		ORDER BY i.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, escapeLike(filter.Search), filter.Status)
	if err != nil {
		return nil, storeErr("list invoices", err)
	}
	defer rows.Close()
	var list []*entity.InvoiceWithCustomer
	for rows.Next() {
		var row entity.InvoiceWithCustomer
		if err := rows.Scan(
			&row.ID, &row.Number, &row.CustomerID, &row.Amount, &row.DueDate, &row.Status,
			&row.PDFURL, &row.CreatedAt, &row.UpdatedAt, &row.CustomerName, &row.CustomerEmail,
		); err != nil {
			return nil, storeErr("scan invoice", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}

// UpdateStatus fija el estado almacenado de la factura.
func (r *InvoiceRepo) UpdateStatus(id, status string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE invoices SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return storeErr("update invoice status", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdatePDFURL persiste la referencia del artefacto PDF.
func (r *InvoiceRepo) UpdatePDFURL(id, pdfURL string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE invoices SET pdf_url = $2, updated_at = now() WHERE id = $1`, id, pdfURL)
	if err != nil {
		return storeErr("update invoice pdf_url", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountByStatus devuelve el total de facturas con ese estado.
func (r *InvoiceRepo) CountByStatus(status string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM invoices WHERE status = $1`, status).Scan(&n)
	if err != nil {
		return 0, storeErr("count invoices", err)
	}
	return n, nil
}

// SumAmountByStatus suma los montos de las facturas con ese estado.
func (r *InvoiceRepo) SumAmountByStatus(status string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(amount), 0) FROM invoices WHERE status = $1`, status).Scan(&sum)
	if err != nil {
		return decimal.Zero, storeErr("sum invoices", err)
	}
	return sum, nil
}
