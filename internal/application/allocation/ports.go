package allocation

import (
	"context"

	"github.com/jcastro-ops/inventario-campo/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD. La mutación
// de la asignación y el ajuste de la demanda estimada del ítem viajan en la
// misma transacción: aplicarlas por separado es una violación de consistencia.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		stockRepo repository.StockRepository,
		allocRepo repository.AllocationRepository,
	) error) error
}
