package stock

import (
	"context"

	"github.com/jcastro-ops/inventario-campo/internal/application/dto"
	"github.com/jcastro-ops/inventario-campo/internal/domain"
	"github.com/jcastro-ops/inventario-campo/internal/domain/repository"
)

// QueryUseCase consultas de solo lectura sobre el ledger de stock.
// No cachea nada entre llamadas.
type QueryUseCase struct {
	itemRepo      repository.ItemRepository
	warehouseRepo repository.WarehouseRepository
	stockRepo     repository.StockRepository
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(
	itemRepo repository.ItemRepository,
	warehouseRepo repository.WarehouseRepository,
	stockRepo repository.StockRepository,
) *QueryUseCase {
	return &QueryUseCase{itemRepo: itemRepo, warehouseRepo: warehouseRepo, stockRepo: stockRepo}
}

// ConsolidatedTotals devuelve ítem → suma de stock en todos los almacenes.
// Los ítems sin filas de stock no aparecen: clave ausente significa cero.
func (uc *QueryUseCase) ConsolidatedTotals(ctx context.Context) (*dto.TotalsResponse, error) {
	totals, err := uc.stockRepo.ConsolidatedTotals()
	if err != nil {
		return nil, err
	}
	return &dto.TotalsResponse{Totals: totals}, nil
}

// TotalsForWarehouse devuelve ítem → cantidad restringido a un almacén.
func (uc *QueryUseCase) TotalsForWarehouse(ctx context.Context, warehouseID string) (*dto.TotalsResponse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	totals, err := uc.stockRepo.TotalsForWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	return &dto.TotalsResponse{WarehouseID: warehouseID, Totals: totals}, nil
}

// ListItems lista el catálogo ordenado por nombre con el stock de la vista
// pedida: consolidado si warehouseID es vacío, filtrado al almacén si no.
func (uc *QueryUseCase) ListItems(ctx context.Context, warehouseID string) ([]dto.ItemStockRow, error) {
	var totals map[string]int
	var err error
	if warehouseID == "" {
		totals, err = uc.stockRepo.ConsolidatedTotals()
	} else {
		warehouse, werr := uc.warehouseRepo.GetByID(warehouseID)
		if werr != nil {
			return nil, werr
		}
		if warehouse == nil {
			return nil, domain.ErrNotFound
		}
		totals, err = uc.stockRepo.TotalsForWarehouse(warehouseID)
	}
	if err != nil {
		return nil, err
	}

	items, err := uc.itemRepo.List()
	if err != nil {
		return nil, err
	}
	rows := make([]dto.ItemStockRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, dto.ItemStockRow{
			ItemResponse: *toItemResponse(it),
			OnHand:       totals[it.ID],
		})
	}
	return rows, nil
}

// Distribution devuelve las cantidades positivas de un ítem por almacén,
// ordenadas por nombre de almacén ascendente. ErrNotFound si el ítem no existe.
func (uc *QueryUseCase) Distribution(ctx context.Context, itemID string) (*dto.DistributionResponse, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	dist, err := uc.stockRepo.DistributionByItem(itemID)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.DistributionRow, 0, len(dist))
	for _, d := range dist {
		rows = append(rows, dto.DistributionRow{
			WarehouseID:   d.WarehouseID,
			WarehouseName: d.WarehouseName,
			Quantity:      d.Quantity,
		})
	}
	return &dto.DistributionResponse{Item: *toItemResponse(item), Rows: rows}, nil
}
