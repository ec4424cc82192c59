package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jcastro-ops/inventario-campo/internal/application/allocation"
	"github.com/jcastro-ops/inventario-campo/internal/application/dto"
)

// AllocationHandler maneja las peticiones HTTP del ledger de asignaciones.
type AllocationHandler struct {
	uc *allocation.UseCase
}

// NewAllocationHandler construye el handler.
func NewAllocationHandler(uc *allocation.UseCase) *AllocationHandler {
	return &AllocationHandler{uc: uc}
}

// Allocate godoc
// @Summary      Asignar ítem a un material
// @Description  Acumula sobre la asignación existente del par (material, ítem) si ya hay una.
// @Tags         allocations
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del material"
// @Param        body  body  dto.AllocateRequest  true  "Ítem y cantidad"
// @Success      201   {object}  dto.AllocationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/materials/{id}/allocations [post]
func (h *AllocationHandler) Allocate(c *fiber.Ctx) error {
	var in dto.AllocateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ItemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "item_id es requerido"})
	}
	out, err := h.uc.Allocate(c.Context(), c.Params("id"), in)
	if err != nil {
		return errorResponse(c, err)
	}
	allocationsTotal.Inc()
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByMaterial godoc
// @Summary      Listar asignaciones de un material
// @Tags         allocations
// @Produce      json
// @Param        id  path  string  true  "ID del material"
// @Success      200  {array}   dto.AllocationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materials/{id}/allocations [get]
func (h *AllocationHandler) ListByMaterial(c *fiber.Ctx) error {
	out, err := h.uc.ListByMaterial(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// Deallocate godoc
// @Summary      Eliminar asignación
// @Description  Descuenta la cantidad de la demanda estimada del ítem (clamp en cero).
// @Tags         allocations
// @Produce      json
// @Param        id  path  string  true  "ID de la asignación"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/allocations/{id} [delete]
func (h *AllocationHandler) Deallocate(c *fiber.Ctx) error {
	if err := h.uc.Deallocate(c.Context(), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
