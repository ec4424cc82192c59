package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jcastro-ops/inventario-campo/internal/application/dto"
	"github.com/jcastro-ops/inventario-campo/internal/domain"
	"github.com/jcastro-ops/inventario-campo/internal/domain/entity"
	"github.com/jcastro-ops/inventario-campo/internal/domain/repository"
)

// WarehouseUseCase casos de uso CRUD para almacenes.
type WarehouseUseCase struct {
	repo      repository.WarehouseRepository
	catalogTx CatalogTxRunner
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository, catalogTx CatalogTxRunner) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, catalogTx: catalogTx}
}

// Create crea un almacén nuevo. El nombre es único.
func (uc *WarehouseUseCase) Create(ctx context.Context, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	warehouse := &entity.Warehouse{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// List lista los almacenes ordenados por nombre.
func (uc *WarehouseUseCase) List(ctx context.Context) ([]dto.WarehouseResponse, error) {
	warehouses, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.WarehouseResponse, 0, len(warehouses))
	for _, w := range warehouses {
		out = append(out, *toWarehouseResponse(w))
	}
	return out, nil
}

// Delete elimina el almacén y sus filas de stock en una transacción.
func (uc *WarehouseUseCase) Delete(ctx context.Context, warehouseID string) error {
	return uc.catalogTx.RunCatalog(ctx, func(
		_ repository.AreaRepository,
		_ repository.MaterialRepository,
		warehouseRepo repository.WarehouseRepository,
		_ repository.ItemRepository,
		stockRepo repository.StockRepository,
		_ repository.AllocationRepository,
	) error {
		warehouse, err := warehouseRepo.GetByID(warehouseID)
		if err != nil {
			return err
		}
		if warehouse == nil {
			return domain.ErrNotFound
		}
		if err := stockRepo.DeleteByWarehouse(warehouseID); err != nil {
			return err
		}
		return warehouseRepo.Delete(warehouseID)
	})
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	return &dto.WarehouseResponse{ID: w.ID, Name: w.Name, CreatedAt: w.CreatedAt}
}
