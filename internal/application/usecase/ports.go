package usecase

import (
	"context"

	"github.com/jcastro-ops/inventario-campo/internal/domain/repository"
)

// CatalogTxRunner ejecuta cascadas de catálogo (áreas, materiales, almacenes)
// en una transacción: la baja de un material o un área también da de baja sus
// asignaciones y descuenta la demanda estimada de los ítems referenciados.
type CatalogTxRunner interface {
	RunCatalog(ctx context.Context, fn func(
		areaRepo repository.AreaRepository,
		materialRepo repository.MaterialRepository,
		warehouseRepo repository.WarehouseRepository,
		itemRepo repository.ItemRepository,
		stockRepo repository.StockRepository,
		allocRepo repository.AllocationRepository,
	) error) error
}

// deallocateMaterial da de baja las asignaciones de un material descontando
// la demanda estimada de cada ítem referenciado (clamp en cero), para que el
// invariante demanda == suma de asignaciones vivas se conserve en la cascada.
func deallocateMaterial(
	itemRepo repository.ItemRepository,
	allocRepo repository.AllocationRepository,
	materialID string,
) error {
	allocs, err := allocRepo.ListByMaterial(materialID)
	if err != nil {
		return err
	}
	for _, a := range allocs {
		if err := itemRepo.ReduceEstimatedDemand(a.ItemID, a.Quantity); err != nil {
			return err
		}
	}
	return allocRepo.DeleteByMaterial(materialID)
}
