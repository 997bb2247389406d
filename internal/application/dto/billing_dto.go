package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// SubscriptionRequestResponse solicitud de suscripción en respuestas.
type SubscriptionRequestResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// ResolveRequestBody body para POST /api/requests/:id/resolve.
// Decision: "approve" o "reject".
type ResolveRequestBody struct {
	Decision string `json:"decision"`
}

// ResolveRequestResponse resultado de la resolución. Customer solo viene
// en aprobaciones.
type ResolveRequestResponse struct {
	Request  SubscriptionRequestResponse `json:"request"`
	Customer *CustomerResponse           `json:"customer,omitempty"`
}

// CreateInvoiceRequest body para POST /api/invoices.
// DueDate en formato AAAA-MM-DD.
type CreateInvoiceRequest struct {
	CustomerID string          `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	DueDate    string          `json:"due_date"`
}

// UpdateInvoiceStatusRequest body para PATCH /api/invoices/:id/status.
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status"`
}

// InvoiceResponse factura en respuestas. Overdue es una clasificación de
// solo lectura (pendiente + vencida hoy); el estado almacenado manda.
type InvoiceResponse struct {
	ID            string          `json:"id"`
	Number        string          `json:"invoice_number"`
	CustomerID    string          `json:"customer_id"`
	CustomerName  string          `json:"customer_name,omitempty"`
	CustomerEmail string          `json:"customer_email,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       string          `json:"due_date"`
	Status        string          `json:"status"`
	Overdue       bool            `json:"overdue"`
	PDFURL        string          `json:"pdf_url,omitempty"`
	CreatedAt     string          `json:"created_at"`
}

// GeneratePDFResponse resultado de POST /api/invoices/:id/pdf.
type GeneratePDFResponse struct {
	InvoiceID string `json:"invoice_id"`
	PDFURL    string `json:"pdf_url"`
}

// DashboardStatsResponse métricas del tablero principal.
type DashboardStatsResponse struct {
	TotalCustomers      int             `json:"total_customers"`
	ActiveSubscriptions int             `json:"active_subscriptions"`
	PendingRequests     int             `json:"pending_requests"`
	PendingInvoices     int             `json:"pending_invoices"`
	PaidRevenue         decimal.Decimal `json:"paid_revenue"`
}
