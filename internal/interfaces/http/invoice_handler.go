package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Facturacion-api/internal/application/billing"
	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain"
)

// InvoiceHandler maneja las peticiones HTTP de facturación (protegido).
type InvoiceHandler struct {
	uc    *billing.InvoiceUseCase
	pdfUC *billing.PDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, pdfUC *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdfUC: pdfUC}
}

// Create crea una factura pendiente contra un cliente existente.
// POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	invoice, err := h.uc.Create(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customer_id es requerido"})
		case errors.Is(err, domain.ErrInvalidAmount):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_AMOUNT", Message: "el monto debe ser mayor o igual a cero"})
		case errors.Is(err, domain.ErrInvalidDate):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "due_date debe tener formato AAAA-MM-DD"})
		case errors.Is(err, domain.ErrCustomerNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_CUSTOMER", Message: "cliente no encontrado"})
		case errors.Is(err, domain.ErrDuplicateInvoiceNumber):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_NUMBER", Message: "número de factura duplicado"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// List lista facturas con filtros de búsqueda y estado.
// GET /api/invoices?search=&status=
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	search := c.Query("search")
	status := c.Query("status", "all")
	list, err := h.uc.List(c.Context(), search, status)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(list)
}

// GetByID obtiene una factura con los datos del cliente.
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	invoice, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrInvoiceNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return internalError(c, err)
	}
	return c.JSON(invoice)
}

// SetStatus fija el estado almacenado de la factura (acción del staff).
// PATCH /api/invoices/:id/status
func (h *InvoiceHandler) SetStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	var in dto.UpdateInvoiceStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SetStatus(c.Context(), id, in.Status); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status debe ser pending, paid u overdue"})
		}
		if errors.Is(err, domain.ErrInvoiceNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return internalError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GeneratePDF genera el artefacto PDF y persiste su URL.
// POST /api/invoices/:id/pdf
func (h *InvoiceHandler) GeneratePDF(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	url, err := h.pdfUC.GenerateInvoicePDF(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrInvoiceNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_INVOICE", Message: "factura no encontrada"})
		}
		if errors.Is(err, domain.ErrStoreUnavailable) {
			return internalError(c, err)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_FAILED", Message: "no se pudo generar el PDF"})
	}
	return c.JSON(dto.GeneratePDFResponse{InvoiceID: id, PDFURL: url})
}
