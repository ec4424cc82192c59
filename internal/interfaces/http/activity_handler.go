package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jcastro-ops/inventario-campo/internal/application/dto"
	"github.com/jcastro-ops/inventario-campo/internal/application/usecase"
)

// ActivityHandler maneja la hoja semanal de actividades.
type ActivityHandler struct {
	uc *usecase.ActivityUseCase
}

// NewActivityHandler construye el handler.
func NewActivityHandler(uc *usecase.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// List godoc
// @Summary      Listar actividades de la semana
// @Tags         activities
// @Produce      json
// @Success      200  {array}  dto.ActivityRow
// @Router       /api/activities [get]
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// UpdateStates godoc
// @Summary      Actualizar estados de las actividades
// @Description  Aplica los estados en el mismo orden del listado; el largo debe coincidir.
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateActivitiesRequest  true  "Estados"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/activities [put]
func (h *ActivityHandler) UpdateStates(c *fiber.Ctx) error {
	var in dto.UpdateActivitiesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateStates(c.Context(), in.Done); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
