package stock

import (
	"context"

	"github.com/jcastro-ops/inventario-campo/internal/domain"
	"github.com/jcastro-ops/inventario-campo/internal/domain/repository"
)

// DeleteItemUseCase elimina un ítem con cascada transaccional: primero sus
// asignaciones, luego sus filas de stock y por último el ítem. O toda la
// cascada se aplica o nada queda visible.
type DeleteItemUseCase struct {
	txRunner TxRunner
}

// NewDeleteItemUseCase construye el caso de uso.
func NewDeleteItemUseCase(txRunner TxRunner) *DeleteItemUseCase {
	return &DeleteItemUseCase{txRunner: txRunner}
}

// Delete elimina el ítem y todo lo que lo referencia. ErrNotFound si no existe.
func (uc *DeleteItemUseCase) Delete(ctx context.Context, itemID string) error {
	return uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		stockRepo repository.StockRepository,
		allocRepo repository.AllocationRepository,
	) error {
		item, err := itemRepo.GetByID(itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if err := allocRepo.DeleteByItem(itemID); err != nil {
			return err
		}
		if err := stockRepo.DeleteByItem(itemID); err != nil {
			return err
		}
		return itemRepo.Delete(itemID)
	})
}
