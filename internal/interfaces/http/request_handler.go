package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Facturacion-api/internal/application/billing"
	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain"
)

// RequestHandler maneja las solicitudes de suscripción (protegido).
type RequestHandler struct {
	uc *billing.RequestUseCase
}

// NewRequestHandler construye el handler.
func NewRequestHandler(uc *billing.RequestUseCase) *RequestHandler {
	return &RequestHandler{uc: uc}
}

// ListPending lista las solicitudes pendientes, las más recientes primero.
// GET /api/requests/pending
func (h *RequestHandler) ListPending(c *fiber.Ctx) error {
	list, err := h.uc.ListPending(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(list)
}

// Resolve aprueba o rechaza una solicitud pendiente.
// POST /api/requests/:id/resolve
//
// La capa de presentación NO debe reintentar automáticamente ante
// INVALID_STATE (la solicitud ya fue resuelta); PARTIAL_APPROVAL exige
// reconciliación manual del operador.
func (h *RequestHandler) Resolve(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	var in dto.ResolveRequestBody
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Resolve(c.Context(), id, in.Decision)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "decision debe ser approve o reject"})
		case errors.Is(err, domain.ErrRequestNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitud no encontrada"})
		case errors.Is(err, domain.ErrInvalidStateTransition):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_STATE", Message: "la solicitud ya fue resuelta"})
		case errors.Is(err, domain.ErrPartialApproval):
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PARTIAL_APPROVAL", Message: "cliente creado pero la solicitud sigue pendiente; contacte al administrador"})
		}
		return internalError(c, err)
	}
	return c.JSON(resp)
}
