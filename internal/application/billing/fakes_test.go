package billing_test

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeRequestRepo struct {
	byID map[string]*entity.SubscriptionRequest
	// orden de ListByStatus (simula created_at DESC del almacén real)
	order []string
	// si no es nil, UpdateStatus falla con este error
	updateErr   error
	updateCalls int
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{byID: make(map[string]*entity.SubscriptionRequest)}
}

func (f *fakeRequestRepo) add(r *entity.SubscriptionRequest) {
	f.byID[r.ID] = r
	f.order = append(f.order, r.ID)
}

func (f *fakeRequestRepo) Create(r *entity.SubscriptionRequest) error {
	f.add(r)
	return nil
}

func (f *fakeRequestRepo) GetByID(id string) (*entity.SubscriptionRequest, error) {
	return f.byID[id], nil
}

func (f *fakeRequestRepo) ListByStatus(status string) ([]*entity.SubscriptionRequest, error) {
	var out []*entity.SubscriptionRequest
	for _, id := range f.order {
		if f.byID[id].Status == status {
			out = append(out, f.byID[id])
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) UpdateStatus(id, from, to string) error {
	f.updateCalls++
	if f.updateErr != nil {
		return f.updateErr
	}
	r, ok := f.byID[id]
	if !ok || r.Status != from {
		return domain.ErrConflict
	}
	r.Status = to
	return nil
}

func (f *fakeRequestRepo) CountByStatus(status string) (int, error) {
	n := 0
	for _, r := range f.byID {
		if r.Status == status {
			n++
		}
	}
	return n, nil
}

type fakeCustomerRepo struct {
	byID      map[string]*entity.Customer
	created   []*entity.Customer
	createErr error
	// si no es nil, GetByID falla con este error
	getErr error
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{byID: make(map[string]*entity.Customer)}
}

func (f *fakeCustomerRepo) Create(c *entity.Customer) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.byID[c.ID] = c
	f.created = append(f.created, c)
	return nil
}

func (f *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.byID[id], nil
}

// List simula el almacén real: created_at DESC con LIMIT/OFFSET.
func (f *fakeCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(f.byID))
	for _, c := range f.byID {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeCustomerRepo) Update(c *entity.Customer) error {
	f.byID[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) Count() (int, error) {
	return len(f.byID), nil
}

type fakeInvoiceRepo struct {
	byID    map[string]*entity.Invoice
	order   []string
	nextSeq int
	// joins simulados: customer_id → nombre
	customerNames map[string]string
	createErr     error
	updateErr     error
	pdfURLWrites  int
	lastFilter    repository.InvoiceFilter
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		byID:          make(map[string]*entity.Invoice),
		customerNames: make(map[string]string),
		nextSeq:       1,
	}
}

func (f *fakeInvoiceRepo) add(inv *entity.Invoice) {
	f.byID[inv.ID] = inv
	f.order = append(f.order, inv.ID)
}

func (f *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	if f.createErr != nil {
		return f.createErr
	}
	if inv.Number == "" {
		inv.Number = fmt.Sprintf("INV-%06d", f.nextSeq)
		f.nextSeq++
	}
	f.add(inv)
	return nil
}

func (f *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	return f.byID[id], nil
}

func (f *fakeInvoiceRepo) List(filter repository.InvoiceFilter) ([]*entity.InvoiceWithCustomer, error) {
	f.lastFilter = filter
	var out []*entity.InvoiceWithCustomer
	for _, id := range f.order {
		inv := f.byID[id]
		name := f.customerNames[inv.CustomerID]
		if filter.Status != "" && inv.Status != filter.Status {
			continue
		}
		if filter.Search != "" {
			s := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(inv.Number), s) &&
				!strings.Contains(strings.ToLower(name), s) {
				continue
			}
		}
		out = append(out, &entity.InvoiceWithCustomer{Invoice: *inv, CustomerName: name})
	}
	return out, nil
}

func (f *fakeInvoiceRepo) UpdateStatus(id, status string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	inv, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	inv.Status = status
	return nil
}

func (f *fakeInvoiceRepo) UpdatePDFURL(id, pdfURL string) error {
	inv, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	f.pdfURLWrites++
	inv.PDFURL = pdfURL
	return nil
}

func (f *fakeInvoiceRepo) CountByStatus(status string) (int, error) {
	n := 0
	for _, inv := range f.byID {
		if inv.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeInvoiceRepo) SumAmountByStatus(status string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, inv := range f.byID {
		if inv.Status == status {
			sum = sum.Add(inv.Amount)
		}
	}
	return sum, nil
}

// fakeNotifier registra las colecciones notificadas.
type fakeNotifier struct {
	collections []string
}

func (f *fakeNotifier) Changed(_ context.Context, collection string) {
	f.collections = append(f.collections, collection)
}
