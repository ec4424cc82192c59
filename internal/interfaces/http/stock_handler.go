package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jcastro-ops/inventario-campo/internal/application/dto"
	"github.com/jcastro-ops/inventario-campo/internal/application/stock"
)

// StockHandler maneja las peticiones HTTP del ledger de stock: recepciones,
// catálogo, totales, distribución y baja de ítems.
type StockHandler struct {
	receiveUC    *stock.ReceiveUseCase
	deleteItemUC *stock.DeleteItemUseCase
	queryUC      *stock.QueryUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(
	receiveUC *stock.ReceiveUseCase,
	deleteItemUC *stock.DeleteItemUseCase,
	queryUC *stock.QueryUseCase,
) *StockHandler {
	return &StockHandler{receiveUC: receiveUC, deleteItemUC: deleteItemUC, queryUC: queryUC}
}

// Receive godoc
// @Summary      Registrar recepción de stock
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReceiveRequest  true  "Datos de la recepción"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/receipts [post]
func (h *StockHandler) Receive(c *fiber.Ctx) error {
	var in dto.ReceiveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.WarehouseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "warehouse_id es requerido"})
	}
	out, err := h.receiveUC.Receive(c.Context(), in)
	if err != nil {
		return errorResponse(c, err)
	}
	receiptsTotal.Inc()
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListItems godoc
// @Summary      Listar catálogo con stock
// @Description  Stock consolidado por defecto; con warehouse_id, filtrado a ese almacén.
// @Tags         stock
// @Produce      json
// @Param        warehouse_id  query  string  false  "ID del almacén"
// @Success      200  {array}   dto.ItemStockRow
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items [get]
func (h *StockHandler) ListItems(c *fiber.Ctx) error {
	out, err := h.queryUC.ListItems(c.Context(), c.Query("warehouse_id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// DeleteItem godoc
// @Summary      Eliminar ítem
// @Description  Baja en cascada: asignaciones, stock y el ítem, todo o nada.
// @Tags         stock
// @Produce      json
// @Param        id  path  string  true  "ID del ítem"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [delete]
func (h *StockHandler) DeleteItem(c *fiber.Ctx) error {
	if err := h.deleteItemUC.Delete(c.Context(), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ConsolidatedTotals godoc
// @Summary      Totales consolidados
// @Description  Mapa ítem → suma de stock en todos los almacenes.
// @Tags         stock
// @Produce      json
// @Success      200  {object}  dto.TotalsResponse
// @Router       /api/stock/totals [get]
func (h *StockHandler) ConsolidatedTotals(c *fiber.Ctx) error {
	out, err := h.queryUC.ConsolidatedTotals(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// TotalsForWarehouse godoc
// @Summary      Totales por almacén
// @Tags         stock
// @Produce      json
// @Param        id  path  string  true  "ID del almacén"
// @Success      200  {object}  dto.TotalsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id}/totals [get]
func (h *StockHandler) TotalsForWarehouse(c *fiber.Ctx) error {
	out, err := h.queryUC.TotalsForWarehouse(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// Distribution godoc
// @Summary      Distribución de un ítem por almacén
// @Description  Solo cantidades positivas, ordenadas por nombre de almacén.
// @Tags         stock
// @Produce      json
// @Param        id  path  string  true  "ID del ítem"
// @Success      200  {object}  dto.DistributionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id}/distribution [get]
func (h *StockHandler) Distribution(c *fiber.Ctx) error {
	out, err := h.queryUC.Distribution(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}
