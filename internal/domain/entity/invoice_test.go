package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

func TestIsOverdueAt(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 30, 0, 0, time.UTC)

	cases := []struct {
		name    string
		status  string
		dueDate time.Time
		want    bool
	}{
		{"pendiente con fecha pasada", entity.InvoiceStatusPending, now.AddDate(0, 0, -1), true},
		{"pendiente que vence hoy", entity.InvoiceStatusPending, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), false},
		{"pendiente con fecha futura", entity.InvoiceStatusPending, now.AddDate(0, 0, 1), false},
		{"pagada con fecha pasada", entity.InvoiceStatusPaid, now.AddDate(0, -1, 0), false},
		{"marcada vencida no se reclasifica", entity.InvoiceStatusOverdue, now.AddDate(0, 0, -5), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inv := &entity.Invoice{Status: tc.status, DueDate: tc.dueDate}
			assert.Equal(t, tc.want, inv.IsOverdueAt(now))
		})
	}
}
