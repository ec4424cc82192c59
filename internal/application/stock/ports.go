package stock

import (
	"context"

	"github.com/jcastro-ops/inventario-campo/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor del ledger:
// o todo el cambio es visible o nada lo es.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		stockRepo repository.StockRepository,
		allocRepo repository.AllocationRepository,
	) error) error
}
