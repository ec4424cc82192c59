package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jcastro-ops/inventario-campo/internal/application/stock"
)

// RequirementHandler expone el reporte de requerimientos.
type RequirementHandler struct {
	uc *stock.RequirementUseCase
}

// NewRequirementHandler construye el handler.
func NewRequirementHandler(uc *stock.RequirementUseCase) *RequirementHandler {
	return &RequirementHandler{uc: uc}
}

// Report godoc
// @Summary      Reporte de requerimientos
// @Description  Ítems con faltante priorizados: CRITICAL, luego PARTIAL, luego ADEQUATE; dentro de cada urgencia, mayor faltante primero.
// @Tags         requirements
// @Produce      json
// @Success      200  {array}  dto.RequirementRow
// @Router       /api/requirements [get]
func (h *RequirementHandler) Report(c *fiber.Ctx) error {
	out, err := h.uc.Report(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}
