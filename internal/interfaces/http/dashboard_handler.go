package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Facturacion-api/internal/application/billing"
)

// DashboardHandler métricas agregadas del tablero (protegido).
type DashboardHandler struct {
	uc *billing.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *billing.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats devuelve los totales del tablero.
// GET /api/dashboard/stats
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(stats)
}
