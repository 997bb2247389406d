package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain"
)

// internalError mapea los fallos no tipados de un caso de uso. Un fallo
// transitorio del almacén responde 503 para que el caller reintente;
// cualquier otro error responde 500.
func internalError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrStoreUnavailable) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code: "STORE_UNAVAILABLE", Message: "almacenamiento no disponible, intente de nuevo",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: err.Error(),
	})
}
