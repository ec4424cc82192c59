package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jcastro-ops/inventario-campo/internal/application/allocation"
	"github.com/jcastro-ops/inventario-campo/internal/application/stock"
	"github.com/jcastro-ops/inventario-campo/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ReceiveUC     *stock.ReceiveUseCase
	DeleteItemUC  *stock.DeleteItemUseCase
	QueryUC       *stock.QueryUseCase
	RequirementUC *stock.RequirementUseCase
	AllocationUC  *allocation.UseCase
	AreaUC        *usecase.AreaUseCase
	MaterialUC    *usecase.MaterialUseCase
	WarehouseUC   *usecase.WarehouseUseCase
	ActivityUC    *usecase.ActivityUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Ledger de stock
	stockHandler := NewStockHandler(deps.ReceiveUC, deps.DeleteItemUC, deps.QueryUC)
	stockGroup := api.Group("/stock")
	stockGroup.Post("/receipts", stockHandler.Receive)
	stockGroup.Get("/totals", stockHandler.ConsolidatedTotals)

	items := api.Group("/items")
	items.Get("/", stockHandler.ListItems)
	items.Get("/:id/distribution", stockHandler.Distribution)
	items.Delete("/:id", stockHandler.DeleteItem)

	// Reporte de requerimientos
	requirementHandler := NewRequirementHandler(deps.RequirementUC)
	api.Get("/requirements", requirementHandler.Report)

	// Almacenes
	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id/totals", stockHandler.TotalsForWarehouse)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	// Áreas y materiales de campaña
	areas := api.Group("/areas")
	areaHandler := NewAreaHandler(deps.AreaUC)
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	areas.Post("/", areaHandler.Create)
	areas.Get("/", areaHandler.List)
	areas.Delete("/:id", areaHandler.Delete)
	areas.Post("/:id/materials", materialHandler.Create)
	areas.Get("/:id/materials", materialHandler.ListByArea)

	materials := api.Group("/materials")
	allocationHandler := NewAllocationHandler(deps.AllocationUC)
	materials.Delete("/:id", materialHandler.Delete)
	materials.Post("/:id/allocations", allocationHandler.Allocate)
	materials.Get("/:id/allocations", allocationHandler.ListByMaterial)

	allocations := api.Group("/allocations")
	allocations.Delete("/:id", allocationHandler.Deallocate)

	// Hoja semanal de actividades
	activities := api.Group("/activities")
	activityHandler := NewActivityHandler(deps.ActivityUC)
	activities.Get("/", activityHandler.List)
	activities.Put("/", activityHandler.UpdateStates)
}
