package stock

import (
	"context"

	"github.com/jcastro-ops/inventario-campo/internal/application/dto"
	"github.com/jcastro-ops/inventario-campo/internal/domain/projection"
	"github.com/jcastro-ops/inventario-campo/internal/domain/repository"
)

// RequirementUseCase genera el reporte de requerimientos para triaje:
// combina el stock consolidado con la demanda estimada de cada ítem y
// prioriza por urgencia. Lectura pura, sin mutación ni caché.
type RequirementUseCase struct {
	itemRepo  repository.ItemRepository
	stockRepo repository.StockRepository
}

// NewRequirementUseCase construye el caso de uso.
func NewRequirementUseCase(
	itemRepo repository.ItemRepository,
	stockRepo repository.StockRepository,
) *RequirementUseCase {
	return &RequirementUseCase{itemRepo: itemRepo, stockRepo: stockRepo}
}

// Report proyecta el reporte ordenado: CRITICAL primero, luego PARTIAL y
// ADEQUATE; dentro de cada urgencia, mayor faltante primero.
func (uc *RequirementUseCase) Report(ctx context.Context) ([]dto.RequirementRow, error) {
	items, err := uc.itemRepo.List()
	if err != nil {
		return nil, err
	}
	totals, err := uc.stockRepo.ConsolidatedTotals()
	if err != nil {
		return nil, err
	}

	report := projection.BuildReport(items, totals)
	rows := make([]dto.RequirementRow, 0, len(report))
	for _, r := range report {
		rows = append(rows, dto.RequirementRow{
			ItemID:          r.ItemID,
			Name:            r.Name,
			Category:        r.Category,
			OnHand:          r.OnHand,
			EstimatedDemand: r.EstimatedDemand,
			Shortfall:       r.Shortfall,
			Status:          string(r.Status),
		})
	}
	return rows, nil
}
